package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/rose"
	"github.com/roach88/gildedrose/internal/sim"
	"github.com/roach88/gildedrose/internal/store"
)

// DefaultDays is the simulate default, matching the reference fixture run.
const DefaultDays = 2

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Days     int
	Database string

	// RunIDs overrides the run id generator (for testing).
	// If nil, defaults to sim.UUIDv7Generator.
	RunIDs sim.RunIDGenerator
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	return newSimulateCommand(&SimulateOptions{RootOptions: rootOpts})
}

func newSimulateCommand(opts *SimulateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [inventory-file]",
		Short: "Print an inventory over several days",
		Long: `Advance an inventory day by day, printing every day's listing.

With no inventory file the reference fixture inventory is used.
With --db every day is also appended to a SQLite run log that
can be inspected with "gildedrose trace".

Examples:
  gildedrose simulate
  gildedrose simulate ./inventory.yaml --days 30
  gildedrose simulate --days 10 --db ./rose.db
  GILDEDROSE_DB=./rose.db gildedrose simulate --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runSimulate(opts, path, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", DefaultDays, "number of days to simulate")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run to this SQLite database")

	return cmd
}

func runSimulate(opts *SimulateOptions, path string, cmd *cobra.Command) error {
	if opts.Days < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--days must be non-negative, got %d", opts.Days))
	}
	if err := opts.resolveString(cmd, "db", &opts.Database); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	logger := opts.logger()

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	items, source := FixtureItems(), "fixture"
	if path != "" {
		loaded, err := LoadInventory(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load inventory", err)
		}
		items, source = loaded, path
	}

	simOpts := []sim.Option{sim.WithLogger(logger), sim.WithSource(source)}
	if opts.RunIDs != nil {
		simOpts = append(simOpts, sim.WithRunIDs(opts.RunIDs))
	}

	if opts.Database != "" {
		logger.Info("opening database", "path", opts.Database)
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()

		// Continue the logical clock after any earlier runs in this log.
		runs, err := st.ReadRuns(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read run log", err)
		}
		simOpts = append(simOpts, sim.WithRecorder(st), sim.WithClock(sim.NewClockAt(lastSeq(runs))))
	}

	trace, err := sim.New(rose.New(items...), simOpts...).Run(ctx, opts.Days)
	if err != nil {
		if sim.IsDaysExceeded(err) {
			return WrapExitError(ExitCommandError, "invalid --days", err)
		}
		return WrapExitError(ExitFailure, "simulation failed", err)
	}
	if final, ok := trace.Final(); ok {
		logger.Debug("simulation finished", "run_id", trace.RunID, "day", final.Day, "hash", final.Hash)
	}

	if opts.Format == "json" {
		return writeOK(cmd, trace)
	}

	w := cmd.OutOrStdout()
	for _, day := range trace.Days {
		fmt.Fprintf(w, "-------- day %d --------\n", day.Day)
		fmt.Fprintln(w, "name, sellIn, quality")
		for _, it := range day.Items {
			fmt.Fprintf(w, "%s, %d, %d\n", it.Name, it.SellIn, it.Quality)
		}
		fmt.Fprintln(w)
	}
	if opts.Database != "" {
		fmt.Fprintf(w, "Recorded run %s to %s", trace.RunID, opts.Database)
		if final, ok := trace.Final(); ok {
			fmt.Fprintf(w, " (day %d, hash %s)", final.Day, truncateHash(final.Hash))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// lastSeq returns a seq past everything an earlier run could have used.
// Each run consumes one seq for its header and one per day including day 0.
func lastSeq(runs []store.RunRecord) int64 {
	var seq int64
	for _, r := range runs {
		if end := r.Seq + int64(r.Days) + 1; end > seq {
			seq = end
		}
	}
	return seq
}
