package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/gildedrose/internal/rose"
	"github.com/roach88/gildedrose/internal/sim"
)

// RunRecord is a stored run header.
type RunRecord struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Days   int    `json:"days"`
	Seq    int64  `json:"seq"`
}

// ReadRuns returns every run ordered by seq.
func (s *Store) ReadRuns(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, days, seq
		FROM runs
		ORDER BY seq ASC, id ASC COLLATE BINARY
	`)
	if err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Source, &r.Days, &r.Seq); err != nil {
			return nil, fmt.Errorf("read runs: scan: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ReadRun returns a single run header.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (RunRecord, error) {
	var r RunRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, days, seq
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Source, &r.Days, &r.Seq)
	if err != nil {
		return RunRecord{}, err
	}
	return r, nil
}

// ReadDays rebuilds the snapshots of a run in day order. Days with no items
// are returned with an empty item list.
func (s *Store) ReadDays(ctx context.Context, runID string) ([]sim.DaySnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.day, d.seq, d.snapshot_hash,
		       i.name, i.family, i.sell_in, i.quality
		FROM run_days d
		LEFT JOIN day_items i ON i.run_id = d.run_id AND i.day = d.day
		WHERE d.run_id = ?
		ORDER BY d.seq ASC, i.position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read days: %w", err)
	}
	defer rows.Close()

	var days []sim.DaySnapshot
	for rows.Next() {
		var (
			day             int
			seq             int64
			hash            string
			name, family    sql.NullString
			sellIn, quality sql.NullInt64
		)
		if err := rows.Scan(&day, &seq, &hash, &name, &family, &sellIn, &quality); err != nil {
			return nil, fmt.Errorf("read days: scan: %w", err)
		}
		if n := len(days); n == 0 || days[n-1].Day != day {
			days = append(days, sim.DaySnapshot{Day: day, Seq: seq, Hash: hash, Items: []sim.ItemState{}})
		}
		if !name.Valid {
			continue
		}
		if _, ok := rose.ParseFamily(family.String); !ok {
			return nil, fmt.Errorf("read days: day %d item %q: unknown family %q", day, name.String, family.String)
		}
		last := &days[len(days)-1]
		last.Items = append(last.Items, sim.ItemState{
			Name:    name.String,
			Family:  family.String,
			SellIn:  int(sellIn.Int64),
			Quality: int(quality.Int64),
		})
	}
	return days, rows.Err()
}

// ReadTrace returns the run's snapshots as a sim.Trace.
func (s *Store) ReadTrace(ctx context.Context, runID string) (*sim.Trace, error) {
	if _, err := s.ReadRun(ctx, runID); err != nil {
		return nil, fmt.Errorf("read trace %s: %w", runID, err)
	}
	days, err := s.ReadDays(ctx, runID)
	if err != nil {
		return nil, err
	}
	return &sim.Trace{RunID: runID, Days: days}, nil
}

// FamilyCount is the number of item rows per family across a run.
type FamilyCount struct {
	Family string `json:"family"`
	Rows   int    `json:"rows"`
}

// CountFamilies summarises a run by family, ordered by family slug.
func (s *Store) CountFamilies(ctx context.Context, runID string) ([]FamilyCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT family, COUNT(*)
		FROM day_items
		WHERE run_id = ?
		GROUP BY family
		ORDER BY family ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("count families: %w", err)
	}
	defer rows.Close()

	var out []FamilyCount
	for rows.Next() {
		var fc FamilyCount
		if err := rows.Scan(&fc.Family, &fc.Rows); err != nil {
			return nil, fmt.Errorf("count families: scan: %w", err)
		}
		out = append(out, fc)
	}
	return out, rows.Err()
}
