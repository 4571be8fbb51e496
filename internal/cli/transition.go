package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintledger/internal/ledger"
)

// NewStartCommand creates the start command (planned -> in_progress).
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransitionCommand(rootOpts,
		"start", "Mark a sprint as in progress",
		ledger.StatusInProgress, "Started sprint %s: %s")
}

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransitionCommand(rootOpts,
		"complete", "Mark a sprint as completed",
		ledger.StatusCompleted, "Completed sprint %s: %s")
}

// NewSkipCommand creates the skip command.
func NewSkipCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransitionCommand(rootOpts,
		"skip", "Mark a sprint as skipped",
		ledger.StatusSkipped, "Skipped sprint %s: %s")
}

// newTransitionCommand builds the shared shape of start/complete/skip:
// one id argument, one status transition, one save.
func newTransitionCommand(rootOpts *RootOptions, use, short string, target ledger.Status, doneFmt string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <sprint_id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			entry, err := transition(rootOpts, args[0], target)
			if err != nil {
				return out.FormatError(err)
			}
			return out.Emit(fmt.Sprintf(doneFmt, entry.ID, entry.Title), viewOf(entry))
		},
	}
}

// NewStatusCommand creates the status command, which sets an arbitrary
// status from the four-value enum.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <sprint_id> <status>",
		Short: "Set a sprint's status",
		Example: `  sprints status 001 completed
  sprints status 4 skipped`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			status, err := ledger.ParseStatus(args[1])
			if err != nil {
				return out.FormatError(err)
			}
			entry, err := transition(rootOpts, args[0], status)
			if err != nil {
				return out.FormatError(err)
			}
			return out.Emit(
				fmt.Sprintf("Updated sprint %s to %s", entry.ID, entry.Status),
				viewOf(entry),
			)
		},
	}
}

// transition loads the ledger, applies one status update and saves.
func transition(rootOpts *RootOptions, id string, target ledger.Status) (ledger.Entry, error) {
	led, err := openLedger(rootOpts)
	if err != nil {
		return ledger.Entry{}, err
	}
	entry, err := led.UpdateStatus(id, target)
	if err != nil {
		return ledger.Entry{}, err
	}
	if err := led.Save(); err != nil {
		return ledger.Entry{}, err
	}
	return entry, nil
}
