package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintledger/internal/docsync"
	"github.com/roach88/sprintledger/internal/ledger"
)

// syncView is the JSON payload for the sync command.
type syncView struct {
	Changes []string `json:"changes"`
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the ledger against SPRINT-<id>.md documents",
		Long: `Scan the ledger's directory for SPRINT-<id>.md companion documents
and reconcile them into the ledger: documents for unknown ids are added
as planned sprints, and changed document titles replace stored titles.
The ledger is saved only when something changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}
			text, view, err := runSync(led)
			if err != nil {
				return out.FormatError(err)
			}
			return out.Emit(text, view)
		},
	}
}

// runSync reconciles led against its directory's companion documents,
// saving only if changes occurred. Shared with the watch command.
func runSync(led *ledger.Ledger) (string, syncView, error) {
	dir := filepath.Dir(led.Path())
	slog.Debug("syncing from companion documents", "dir", dir)

	changes, err := docsync.Run(led, dir)
	if err != nil {
		return "", syncView{}, err
	}
	if len(changes) == 0 {
		return "No changes needed", syncView{Changes: []string{}}, nil
	}
	if err := led.Save(); err != nil {
		return "", syncView{}, err
	}

	notes := make([]string, 0, len(changes))
	var b strings.Builder
	b.WriteString("Sync complete:")
	for _, change := range changes {
		notes = append(notes, change.String())
		fmt.Fprintf(&b, "\n  %s", change)
	}
	return b.String(), syncView{Changes: notes}, nil
}
