package cli

import (
	"github.com/spf13/cobra"
)

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next planned sprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}
			next, ok := led.NextPlanned()
			if !ok {
				return out.Emit("No planned sprints", nil)
			}
			return out.Emit(renderEntry(next, true), viewOf(next))
		},
	}
}
