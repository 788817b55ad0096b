package store

import (
	"context"
	"fmt"

	"github.com/roach88/gildedrose/internal/sim"
)

var _ sim.Recorder = (*Store)(nil)

// RecordRun inserts a run record. A second write with the same id is
// silently ignored.
func (s *Store) RecordRun(ctx context.Context, run sim.RunInfo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, days, seq)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Source, run.Days, run.Seq)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecordDay writes a day header and every item of the snapshot in one
// transaction. Rewriting the same (run, day) is a no-op.
//
// The run referenced by runID must already exist (foreign key constraint).
func (s *Store) RecordDay(ctx context.Context, runID string, day sim.DaySnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record day: begin tx: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO run_days (run_id, day, seq, snapshot_hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, day) DO NOTHING
	`, runID, day.Day, day.Seq, day.Hash); err != nil {
		return fmt.Errorf("record day %d: %w", day.Day, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO day_items
		(run_id, day, position, name, family, sell_in, quality)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, day, position) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("record day: prepare: %w", err)
	}
	defer stmt.Close()

	for pos, it := range day.Items {
		if _, err := stmt.ExecContext(ctx,
			runID, day.Day, pos,
			it.Name, it.Family, it.SellIn, it.Quality,
		); err != nil {
			return fmt.Errorf("record day %d item %d: %w", day.Day, pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record day: commit: %w", err)
	}
	return nil
}
