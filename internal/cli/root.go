// Package cli implements the sprints command layer: a fixed set of
// subcommands dispatching to the ledger and the doc sync engine.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintledger/internal/config"
	"github.com/roach88/sprintledger/internal/ledger"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Ledger  string // explicit ledger path; empty means resolve

	// ResolvePath allows overriding ledger path resolution (for testing).
	// If nil, defaults to config.Resolve.
	ResolvePath func(flagValue string) (string, error)

	// Clock allows overriding timestamp generation (for testing).
	// If nil, defaults to the system clock.
	Clock ledger.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sprints CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sprints",
		Short: "Track sprint lifecycle status in a flat-file ledger",
		Long: `sprints tracks the lifecycle of project sprints in a tab-separated
ledger file, reconciling against companion SPRINT-<id>.md documents.

Each sprint is one row: id, title, status, created_at, updated_at.
Statuses move through planned, in_progress, completed or skipped.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			// Argument-count and unknown-command errors surface before
			// this hook and get usage text; domain errors after it
			// should not.
			cmd.SilenceUsage = true
			configureLogging(opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Ledger, "ledger", "", "path to the ledger file (default: resolved)")

	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewCurrentCommand(opts))
	cmd.AddCommand(NewNextCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewStartCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))
	cmd.AddCommand(NewSkipCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// configureLogging routes diagnostics to stderr at the level implied by
// the verbose flag. Command output itself never goes through slog.
func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// openLedger resolves the backing file path and loads the ledger.
// Load-time errors (a malformed row, an unreadable file) abort before
// any command logic runs.
func openLedger(opts *RootOptions) (*ledger.Ledger, error) {
	resolve := opts.ResolvePath
	if resolve == nil {
		resolve = config.Resolve
	}
	path, err := resolve(opts.Ledger)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = ledger.SystemClock{}
	}

	slog.Debug("loading ledger", "path", path)
	led := ledger.NewWithClock(path, clock)
	if err := led.Load(); err != nil {
		return nil, err
	}
	slog.Debug("ledger loaded", "entries", led.Len())
	return led, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
