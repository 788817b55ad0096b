package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/rose"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <inventory-file>",
		Short: "Advance an inventory by one day",
		Long: `Load an inventory file, advance every item by one day and print the result.

The file is not modified. Supported formats: .yaml, .yml, .json, .cue.

Examples:
  gildedrose update ./inventory.yaml
  gildedrose update ./inventory.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runUpdate(opts *RootOptions, path string, cmd *cobra.Command) error {
	items, err := LoadInventory(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load inventory", err)
	}

	rose.UpdateQuality(items)
	opts.logger().Debug("inventory updated", "path", path, "items", len(items))

	if opts.Format == "json" {
		return writeOK(cmd, items)
	}
	writeItems(cmd.OutOrStdout(), items)
	return nil
}

// writeItems prints the "name, sellIn, quality" listing.
func writeItems(w io.Writer, items []*rose.Item) {
	fmt.Fprintln(w, "name, sellIn, quality")
	for _, it := range items {
		fmt.Fprintln(w, it.String())
	}
}
