package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/gildedrose/internal/rose"
)

// DefaultMaxDays bounds a single run.
const DefaultMaxDays = 10000

// Recorder persists a run as it happens. Implemented by store.Store.
type Recorder interface {
	RecordRun(ctx context.Context, run RunInfo) error
	RecordDay(ctx context.Context, runID string, day DaySnapshot) error
}

// RunInfo describes a run before its first day is recorded.
type RunInfo struct {
	ID     string
	Source string
	Days   int
	Seq    int64
}

// Simulator advances an inventory day by day.
//
// Run must not be called concurrently on the same Simulator: the inventory
// is mutated in place.
type Simulator struct {
	inv      *rose.Inventory
	clock    *Clock
	ids      RunIDGenerator
	recorder Recorder
	logger   *slog.Logger
	source   string
	maxDays  int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRecorder sends every run and snapshot to r.
func WithRecorder(r Recorder) Option {
	return func(s *Simulator) { s.recorder = r }
}

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithClock replaces the logical clock, e.g. to continue an existing log.
func WithClock(c *Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

// WithRunIDs replaces the run id generator. Defaults to UUIDv7Generator.
func WithRunIDs(g RunIDGenerator) Option {
	return func(s *Simulator) { s.ids = g }
}

// WithSource labels runs with where the inventory came from.
func WithSource(src string) Option {
	return func(s *Simulator) { s.source = src }
}

// WithMaxDays sets the per-run day limit.
func WithMaxDays(n int) Option {
	return func(s *Simulator) { s.maxDays = n }
}

// New creates a Simulator over inv.
func New(inv *rose.Inventory, opts ...Option) *Simulator {
	s := &Simulator{
		inv:     inv,
		clock:   NewClock(),
		ids:     UUIDv7Generator{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDays: DefaultMaxDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run snapshots the starting inventory as day 0, then advances it days
// times, snapshotting after each day. The returned trace holds days+1
// snapshots. On cancellation the partial trace is returned with ctx.Err().
func (s *Simulator) Run(ctx context.Context, days int) (*Trace, error) {
	if days < 0 {
		return nil, fmt.Errorf("days must be non-negative, got %d", days)
	}
	if days > s.maxDays {
		return nil, &DaysExceededError{Days: days, Limit: s.maxDays}
	}

	runID := s.ids.Generate()
	trace := &Trace{RunID: runID, Days: make([]DaySnapshot, 0, days+1)}

	if s.recorder != nil {
		info := RunInfo{ID: runID, Source: s.source, Days: days, Seq: s.clock.Next()}
		if err := s.recorder.RecordRun(ctx, info); err != nil {
			return nil, fmt.Errorf("record run %s: %w", runID, err)
		}
	}
	s.logger.Debug("run started", "run_id", runID, "days", days, "items", len(s.inv.Items))

	if err := s.snapshot(ctx, trace, 0); err != nil {
		return trace, err
	}
	for day := 1; day <= days; day++ {
		if err := ctx.Err(); err != nil {
			s.logger.Info("run cancelled", "run_id", runID, "day", day-1)
			return trace, err
		}
		s.inv.UpdateQuality()
		if err := s.snapshot(ctx, trace, day); err != nil {
			return trace, err
		}
	}

	s.logger.Debug("run finished", "run_id", runID, "days", days)
	return trace, nil
}

func (s *Simulator) snapshot(ctx context.Context, trace *Trace, day int) error {
	snap, err := NewDaySnapshot(day, s.clock.Next(), s.inv.Items)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	trace.Days = append(trace.Days, snap)

	if s.recorder != nil {
		if err := s.recorder.RecordDay(ctx, trace.RunID, snap); err != nil {
			return fmt.Errorf("record day %d: %w", day, err)
		}
	}
	s.logger.Debug("day recorded", "run_id", trace.RunID, "day", day, "seq", snap.Seq)
	return nil
}
