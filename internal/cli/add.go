package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <sprint_id> <title>...",
		Short: "Add a new planned sprint",
		Example: `  sprints add 003 "Billing integration"
  sprints add 7 Fix the widget`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}

			// Everything after the id is the title, joined with spaces.
			entry, err := led.Add(args[0], strings.Join(args[1:], " "))
			if err != nil {
				return out.FormatError(err)
			}
			if err := led.Save(); err != nil {
				return out.FormatError(err)
			}
			return out.Emit(
				fmt.Sprintf("Added sprint %s: %s", entry.ID, entry.Title),
				viewOf(entry),
			)
		},
	}
}
