package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/sim"
	"github.com/roach88/gildedrose/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	RunID    string
	Item     string // filter to items with this exact name
}

// TraceResult is the JSON payload of a single-run trace.
type TraceResult struct {
	Run      store.RunRecord     `json:"run"`
	Days     []sim.DaySnapshot   `json:"days"`
	Families []store.FamilyCount `json:"families"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded simulation runs",
		Long: `Read the run log written by "gildedrose simulate --db".

Without --run, lists every recorded run in the order it was made.
With --run, prints that run day by day.

Examples:
  gildedrose trace --db ./rose.db
  gildedrose trace --db ./rose.db --run 0190a1f2-...
  gildedrose trace --db ./rose.db --run 0190a1f2-... --item "Aged Brie"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (or GILDEDROSE_DB)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run id to print")
	cmd.Flags().StringVar(&opts.Item, "item", "", "only show items with this name")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	if err := opts.resolveString(cmd, "db", &opts.Database); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	if opts.Database == "" {
		return NewExitError(ExitCommandError, "--db is required")
	}
	ctx := commandContext(cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if opts.RunID == "" {
		runs, err := st.ReadRuns(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read runs", err)
		}
		if opts.Format == "json" {
			if runs == nil {
				runs = []store.RunRecord{}
			}
			return writeOK(cmd, runs)
		}
		outputRunsText(cmd.OutOrStdout(), runs)
		return nil
	}

	run, err := st.ReadRun(ctx, opts.RunID)
	if errors.Is(err, sql.ErrNoRows) {
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", opts.RunID))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	days, err := st.ReadDays(ctx, opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read days", err)
	}
	if opts.Item != "" {
		days = filterItems(days, opts.Item)
	}

	families, err := st.CountFamilies(ctx, opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to summarise run", err)
	}

	result := TraceResult{Run: run, Days: days, Families: families}
	if opts.Format == "json" {
		return writeOK(cmd, result)
	}
	outputTraceText(cmd.OutOrStdout(), result, opts.Verbose)
	return nil
}

// filterItems keeps only items named name. Days are kept even when empty.
func filterItems(days []sim.DaySnapshot, name string) []sim.DaySnapshot {
	out := make([]sim.DaySnapshot, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Items = nil
		for _, it := range d.Items {
			if it.Name == name {
				out[i].Items = append(out[i].Items, it)
			}
		}
	}
	return out
}

func outputRunsText(w io.Writer, runs []store.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	fmt.Fprintln(w, "=== Runs ===")
	for _, r := range runs {
		fmt.Fprintf(w, "  [%d] %s  days=%d  source=%s\n", r.Seq, r.ID, r.Days, r.Source)
	}
}

func outputTraceText(w io.Writer, result TraceResult, verbose bool) {
	fmt.Fprintf(w, "Run: %s\n", result.Run.ID)
	fmt.Fprintf(w, "Source: %s\n", result.Run.Source)
	fmt.Fprintln(w)

	for _, d := range result.Days {
		fmt.Fprintf(w, "-------- day %d --------\n", d.Day)
		if verbose {
			fmt.Fprintf(w, "seq=%d hash=%s\n", d.Seq, truncateHash(d.Hash))
		}
		for _, it := range d.Items {
			fmt.Fprintf(w, "%s, %d, %d\n", it.Name, it.SellIn, it.Quality)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Families ===")
	for _, f := range result.Families {
		fmt.Fprintf(w, "  %-15s %d\n", f.Family, f.Rows)
	}
}

// truncateHash shortens a hash for display.
func truncateHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:12]
}
