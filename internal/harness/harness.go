package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/gildedrose/internal/rose"
	"github.com/roach88/gildedrose/internal/sim"
	"github.com/roach88/gildedrose/internal/store"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Open a fresh in-memory store
//  2. Build the starting inventory from the scenario
//  3. Simulate the requested days, recording every snapshot
//  4. Read the trace back from the store
//  5. Evaluate assertions
//
// An error is returned only when the scenario could not be executed;
// failed assertions are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	runID := scenario.RunID
	if runID == "" {
		runID = DefaultRunID
	}

	simulator := sim.New(
		rose.New(scenario.NewItems()...),
		sim.WithRecorder(st),
		sim.WithRunIDs(sim.NewFixedGenerator(runID)),
		sim.WithSource("scenario:"+scenario.Name),
		sim.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	if _, err := simulator.Run(ctx, scenario.Days); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	trace, err := st.ReadTrace(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Trace = trace
	for _, msg := range EvaluateAssertions(trace, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}
