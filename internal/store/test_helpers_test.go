package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/gildedrose/internal/sim"
)

// createTestStore creates a store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestSnapshot builds a snapshot with the given item states.
func createTestSnapshot(day int, seq int64, items ...sim.ItemState) sim.DaySnapshot {
	return sim.DaySnapshot{Day: day, Seq: seq, Items: items, Hash: "hash-" + string(rune('a'+day))}
}
