// Package docsync reconciles the sprint ledger against companion
// documents: one SPRINT-<id>.md file per sprint whose first-level
// heading supplies the sprint title.
//
// Reconciliation is one-way (documents win): ids missing from the ledger
// are added as planned, and stored titles that differ from the document
// heading are updated. Documents are processed in ascending sprint-number
// order so the change notes are deterministic for a fixed file set, and
// a second run over an unchanged set produces no changes.
package docsync

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/roach88/sprintledger/internal/ledger"
)

var (
	// filenameRe matches companion document filenames: SPRINT-<digits>.md.
	filenameRe = regexp.MustCompile(`^SPRINT-(\d+)\.md$`)

	// headingRe matches the title heading anywhere in the document:
	// "# Sprint <digits>: <title>". Only the first match is used.
	headingRe = regexp.MustCompile(`(?m)^# Sprint (\d+): (.+)$`)
)

// ChangeKind distinguishes the two reconciliation outcomes.
type ChangeKind int

const (
	// ChangeAdded indicates a document id that was absent from the ledger.
	ChangeAdded ChangeKind = iota
	// ChangeTitleUpdated indicates a stored title replaced by the document's.
	ChangeTitleUpdated
)

// Change is one reconciliation action, in the order it was applied.
type Change struct {
	Kind  ChangeKind
	ID    string
	Title string
}

// String renders the change as a human-readable note.
func (c Change) String() string {
	switch c.Kind {
	case ChangeAdded:
		return fmt.Sprintf("Added: %s - %s", c.ID, c.Title)
	case ChangeTitleUpdated:
		return fmt.Sprintf("Updated title: %s - %s", c.ID, c.Title)
	default:
		return fmt.Sprintf("Unknown change: %s", c.ID)
	}
}

// document is one discovered companion file, parsed but not yet applied.
type document struct {
	id     string // normalized
	number int
	title  string
}

// Run scans dir for companion documents and reconciles them into led.
// It returns the ordered change notes; the caller decides whether to
// persist based on whether any changes occurred. Files that do not match
// the SPRINT-<digits>.md pattern are ignored.
func Run(led *ledger.Ledger, dir string) ([]Change, error) {
	docs, err := scan(dir)
	if err != nil {
		return nil, err
	}

	var changes []Change
	for _, doc := range docs {
		change, changed, err := reconcile(led, doc)
		if err != nil {
			return nil, err
		}
		if changed {
			changes = append(changes, change)
		}
	}
	return changes, nil
}

// scan discovers and parses companion documents, sorted by sprint number.
func scan(dir string) ([]document, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var docs []document
	for _, dirent := range dirents {
		if dirent.IsDir() {
			continue
		}
		m := filenameRe.FindStringSubmatch(dirent.Name())
		if m == nil {
			continue
		}
		// Filename ids normalize exactly like ledger ids, so SPRINT-7.md
		// and a ledger row "007" are the same sprint.
		id, err := ledger.NormalizeID(m[1])
		if err != nil {
			continue
		}

		path := filepath.Join(dir, dirent.Name())
		title, err := extractTitle(path, id)
		if err != nil {
			return nil, err
		}

		number, _ := strconv.Atoi(id)
		docs = append(docs, document{id: id, number: number, title: title})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].number < docs[j].number })
	return docs, nil
}

// extractTitle returns the title from the document's first matching
// heading, or the synthesized default "Sprint <id>" when no heading
// matches.
func extractTitle(path, id string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if m := headingRe.FindSubmatch(content); m != nil {
		return ledger.NormalizeTitle(string(m[2])), nil
	}
	return fmt.Sprintf("Sprint %s", id), nil
}

// reconcile applies one document to the ledger.
func reconcile(led *ledger.Ledger, doc document) (Change, bool, error) {
	existing, ok := led.Get(doc.id)
	if !ok {
		if _, err := led.Add(doc.id, doc.title); err != nil {
			return Change{}, false, err
		}
		return Change{Kind: ChangeAdded, ID: doc.id, Title: doc.title}, true, nil
	}
	if existing.Title != doc.title {
		if _, err := led.UpdateTitle(doc.id, doc.title); err != nil {
			return Change{}, false, err
		}
		return Change{Kind: ChangeTitleUpdated, ID: doc.id, Title: doc.title}, true, nil
	}
	return Change{}, false, nil
}
