package cli

import (
	"github.com/spf13/cobra"
)

// NewCurrentCommand creates the current command.
func NewCurrentCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the in-progress sprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}
			current, ok := led.InProgress()
			if !ok {
				return out.Emit("No sprint currently in progress", nil)
			}
			return out.Emit(renderEntry(current, true), viewOf(current))
		},
	}
}
