package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/rose"
)

// RuleInfo describes one family for listings.
type RuleInfo struct {
	Family  string `json:"family"`
	Name    string `json:"name"`
	Ages    bool   `json:"ages"`
	Frozen  bool   `json:"frozen"`
	Summary string `json:"summary"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rules [item-name]",
		Short:         "List item families and their rules",
		Long:          "List every item family, or show which family an item name selects.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			families := rose.Families()
			if len(args) == 1 {
				families = []rose.Family{rose.Classify(args[0])}
			}

			infos := make([]RuleInfo, len(families))
			for i, f := range families {
				r := rose.RuleFor(f)
				name := f.CanonicalName()
				if name == "" {
					name = "(any other name)"
				}
				infos[i] = RuleInfo{Family: f.String(), Name: name, Ages: r.Ages, Frozen: r.Frozen, Summary: r.Summary}
			}

			if rootOpts.Format == "json" {
				return writeOK(cmd, infos)
			}
			w := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(w, "%-15s %-45s %s\n", info.Family, info.Name, info.Summary)
			}
			return nil
		},
	}
}
