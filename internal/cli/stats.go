package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sprintledger/internal/ledger"
)

// statsView is the JSON payload for the stats command.
type statsView struct {
	Total   int            `json:"total"`
	Counts  map[string]int `json:"counts"`
	Current *entryView     `json:"current,omitempty"`
	Next    *entryView     `json:"next,omitempty"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			led, err := openLedger(rootOpts)
			if err != nil {
				return out.FormatError(err)
			}
			return out.Emit(renderStats(led), statsData(led))
		},
	}
}

func renderStats(led *ledger.Ledger) string {
	counts := led.CountByStatus()

	var b strings.Builder
	b.WriteString(headingStyle.Render("Sprint Ledger Statistics") + "\n")
	b.WriteString("========================\n")
	fmt.Fprintf(&b, "Total sprints: %d\n", led.Len())
	for _, s := range ledger.Statuses() {
		fmt.Fprintf(&b, "\n  %s: %d", s, counts[s])
	}

	if current, ok := led.InProgress(); ok {
		fmt.Fprintf(&b, "\n\nCurrent: %s - %s", current.ID, current.Title)
	}
	if next, ok := led.NextPlanned(); ok {
		fmt.Fprintf(&b, "\nNext: %s - %s", next.ID, next.Title)
	}
	return b.String()
}

func statsData(led *ledger.Ledger) statsView {
	counts := make(map[string]int, 4)
	for s, n := range led.CountByStatus() {
		counts[string(s)] = n
	}
	view := statsView{Total: led.Len(), Counts: counts}
	if current, ok := led.InProgress(); ok {
		v := viewOf(current)
		view.Current = &v
	}
	if next, ok := led.NextPlanned(); ok {
		v := viewOf(next)
		view.Next = &v
	}
	return view
}
