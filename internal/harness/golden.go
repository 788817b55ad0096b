package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/gildedrose/internal/canon"
	"github.com/roach88/gildedrose/internal/sim"
)

// SnapshotJSON renders a scenario trace in canonical JSON. This is the
// golden file format shared by tests and the `test` command.
func SnapshotJSON(scenarioName string, trace *sim.Trace) ([]byte, error) {
	days := make([]any, len(trace.Days))
	for i, d := range trace.Days {
		days[i] = map[string]any{
			"day":   d.Day,
			"seq":   d.Seq,
			"hash":  d.Hash,
			"items": sim.CanonicalItems(d.Items),
		}
	}

	snapshot := map[string]any{
		"scenario_name": scenarioName,
		"days":          days,
	}
	if trace.RunID != "" {
		snapshot["run_id"] = trace.RunID
	}
	return canon.MarshalCanonical(snapshot)
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against its golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := SnapshotJSON(scenarioName, result.Trace)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
