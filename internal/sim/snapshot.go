package sim

import (
	"github.com/roach88/gildedrose/internal/canon"
	"github.com/roach88/gildedrose/internal/rose"
)

// ItemState is a value copy of an item at the end of a day.
type ItemState struct {
	Name    string `json:"name"`
	Family  string `json:"family"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// DaySnapshot is the full inventory after a given day. Day 0 is the
// starting inventory.
type DaySnapshot struct {
	Day   int         `json:"day"`
	Seq   int64       `json:"seq"`
	Items []ItemState `json:"items"`
	Hash  string      `json:"hash"`
}

// Trace is the sequence of snapshots produced by one run.
type Trace struct {
	RunID string        `json:"run_id"`
	Days  []DaySnapshot `json:"days"`
}

// Capture copies items into ItemStates. nil items are dropped.
func Capture(items []*rose.Item) []ItemState {
	states := make([]ItemState, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		states = append(states, ItemState{
			Name:    it.Name,
			Family:  it.Family().String(),
			SellIn:  it.SellIn,
			Quality: it.Quality,
		})
	}
	return states
}

// CanonicalItems converts states into the map form canon understands.
func CanonicalItems(states []ItemState) []map[string]any {
	out := make([]map[string]any, len(states))
	for i, s := range states {
		out[i] = map[string]any{
			"name":    s.Name,
			"family":  s.Family,
			"sell_in": s.SellIn,
			"quality": s.Quality,
		}
	}
	return out
}

// NewDaySnapshot captures items and computes the snapshot hash.
func NewDaySnapshot(day int, seq int64, items []*rose.Item) (DaySnapshot, error) {
	states := Capture(items)
	hash, err := canon.SnapshotHash(day, CanonicalItems(states))
	if err != nil {
		return DaySnapshot{}, err
	}
	return DaySnapshot{Day: day, Seq: seq, Items: states, Hash: hash}, nil
}

// Final returns the last snapshot, or false for an empty trace.
func (t *Trace) Final() (DaySnapshot, bool) {
	if len(t.Days) == 0 {
		return DaySnapshot{}, false
	}
	return t.Days[len(t.Days)-1], true
}
