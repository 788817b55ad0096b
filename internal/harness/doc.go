// Package harness runs inventory scenarios as executable tests.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: normal_item_expiry
//	description: "Normal items degrade twice as fast once expired"
//	days: 6
//	run_id: run-normal          # optional, defaults to "test-run-default"
//	items:
//	  - name: "+5 Dexterity Vest"
//	    sell_in: 5
//	    quality: 10
//	assertions:
//	  - type: item_state
//	    day: 1
//	    item: 0
//	    sell_in: 4
//	    quality: 9
//	  - type: quality_delta
//	    day: 6
//	    item: 0
//	    delta: -2
//	  - type: quality_bounds
//
// # Assertion Types
//
//   - item_state: the item at index `item` has the given sell_in and/or quality on `day`
//   - quality_delta: quality on `day` minus quality on `day-1` equals `delta`
//   - quality_bounds: every non-legendary item that starts in [0, 50] stays there;
//     items supplied out of range are skipped, since the rules never normalise them
//   - frozen: the item at index `item` is identical on every day
//
// # Determinism
//
// Each scenario runs against a fresh in-memory SQLite store with a fixed run
// id and a fresh logical clock, and the trace is read back from the store.
// Identical scenarios therefore produce byte-identical golden snapshots.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/normal.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
