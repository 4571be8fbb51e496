package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/sprintledger/internal/ledger"
)

// Status icons, one character each so list rows line up.
var statusIcons = map[ledger.Status]string{
	ledger.StatusPlanned:    " ",
	ledger.StatusInProgress: "*",
	ledger.StatusCompleted:  "+",
	ledger.StatusSkipped:    "-",
}

// Status colors degrade to plain text on non-color terminals.
var statusStyles = map[ledger.Status]lipgloss.Style{
	ledger.StatusPlanned:    lipgloss.NewStyle(),
	ledger.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	ledger.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ledger.StatusSkipped:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// renderEntry renders one sprint as its list row, and in verbose mode
// the indented detail lines beneath it.
func renderEntry(e ledger.Entry, verbose bool) string {
	icon := statusIcons[e.Status]
	style := statusStyles[e.Status]

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("[%s] %s: %s", icon, e.ID, e.Title)))
	if verbose {
		b.WriteString(fmt.Sprintf("\n    Status: %s", e.Status))
		b.WriteString(fmt.Sprintf("\n    Doc: %s", e.DocPath()))
		b.WriteString(fmt.Sprintf("\n    Created: %s", e.CreatedAt))
		b.WriteString(fmt.Sprintf("\n    Updated: %s", e.UpdatedAt))
	}
	return b.String()
}

// entryView is the JSON payload shape for a single sprint.
type entryView struct {
	ID        string `json:"sprint_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	DocPath   string `json:"doc_path"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func viewOf(e ledger.Entry) entryView {
	return entryView{
		ID:        e.ID,
		Title:     e.Title,
		Status:    string(e.Status),
		DocPath:   e.DocPath(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func viewsOf(entries []ledger.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, viewOf(e))
	}
	return views
}
