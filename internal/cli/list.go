package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintledger/internal/ledger"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Status string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints, optionally filtered by status",
		Example: `  sprints list
  sprints list --status planned`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())

			var filter ledger.Status
			if opts.Status != "" {
				parsed, err := ledger.ParseStatus(opts.Status)
				if err != nil {
					return out.FormatError(err)
				}
				filter = parsed
			}

			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}

			entries := led.Entries()
			if filter != "" {
				entries = led.ByStatus(filter)
			}
			if len(entries) == 0 {
				return out.Emit("No sprints found", []entryView{})
			}

			rows := make([]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, renderEntry(e, false))
			}
			return out.Emit(strings.Join(rows, "\n"), viewsOf(entries))
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status (planned|in_progress|completed|skipped)")

	return cmd
}
