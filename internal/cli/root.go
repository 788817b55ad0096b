package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override flag defaults,
// e.g. GILDEDROSE_FORMAT=json or GILDEDROSE_DB=./rose.db.
const EnvPrefix = "GILDEDROSE"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	config *viper.Viper
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the gildedrose CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gildedrose",
		Short: "Gilded Rose inventory",
		Long: `Advance a Gilded Rose inventory day by day.

Items follow the rules of their family, selected by exact name:
Aged Brie, Backstage passes, Sulfuras (legendary), Conjured, or normal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.env()
			if err := bindFlags(cfg, cmd.Root().PersistentFlags(), "verbose", "format"); err != nil {
				return err
			}
			opts.Format = cfg.GetString("format")
			opts.Verbose = cfg.GetBool("verbose")
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))

	return cmd
}

// env returns the viper instance backing environment overrides.
func (o *RootOptions) env() *viper.Viper {
	if o.config == nil {
		v := viper.New()
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
		o.config = v
	}
	return o.config
}

// bindFlags binds the named flags to cfg so environment values fill in
// flags that were not set on the command line.
func bindFlags(cfg *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// resolveString sets *dst from the environment when the named flag was not
// given on the command line.
func (o *RootOptions) resolveString(cmd *cobra.Command, name string, dst *string) error {
	if cmd.Flags().Changed(name) {
		return nil
	}
	cfg := o.env()
	if err := cfg.BindEnv(name); err != nil {
		return fmt.Errorf("bind %s_%s: %w", EnvPrefix, strings.ToUpper(name), err)
	}
	if v := cfg.GetString(name); v != "" {
		*dst = v
	}
	return nil
}

// logger builds the command logger. Logs go to stderr so json output on
// stdout stays parseable.
func (o *RootOptions) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
