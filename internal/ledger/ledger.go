package ledger

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// Header is the fixed first line of the backing file. Field order and
// header text are part of the format contract.
const Header = "sprint_id\ttitle\tstatus\tcreated_at\tupdated_at"

// Ledger is the sprint record store for a single invocation.
type Ledger struct {
	path    string
	clock   Clock
	entries map[string]Entry
}

// New creates an empty ledger bound to the given backing file path,
// stamping timestamps from the system clock. Call Load before use.
func New(path string) *Ledger {
	return NewWithClock(path, SystemClock{})
}

// NewWithClock creates a ledger with an explicit clock. Tests use this
// with testutil's deterministic clock.
func NewWithClock(path string, clock Clock) *Ledger {
	return &Ledger{
		path:    path,
		clock:   clock,
		entries: make(map[string]Entry),
	}
}

// Path returns the backing file path the ledger was bound to.
func (l *Ledger) Path() string {
	return l.path
}

// Load reads the backing file into memory. A missing file yields an
// empty ledger, not an error, so first run succeeds with zero entries.
// The header line and blank lines are skipped; the first malformed row
// aborts the load with MALFORMED_RECORD so no partial ledger is ever
// operated on.
func (l *Ledger) Load() error {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read ledger %s: %w", l.path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := UnmarshalRow(line)
		if err != nil {
			return err
		}
		l.entries[entry.ID] = entry
	}
	return nil
}

// Save rewrites the backing file: header first, then every entry in
// ascending sprint-number order. The write goes through a temp file and
// rename, so readers never observe a partial file.
func (l *Ledger) Save() error {
	var b strings.Builder
	b.WriteString(Header + "\n")
	for _, entry := range l.Entries() {
		b.WriteString(entry.MarshalRow() + "\n")
	}
	if err := atomic.WriteFile(l.path, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("write ledger %s: %w", l.path, err)
	}
	return nil
}

// Add inserts a new planned sprint, stamping created_at and updated_at
// with the current time. Fails with DUPLICATE_ID when the normalized id
// already exists; the ledger is unchanged on any failure. In-memory
// only: the caller must Save to persist.
func (l *Ledger) Add(id, title string) (Entry, error) {
	return l.AddWithStatus(id, title, StatusPlanned)
}

// AddWithStatus is Add with an explicit initial status.
func (l *Ledger) AddWithStatus(id, title string, status Status) (Entry, error) {
	now := timestamp(l.clock)
	entry, err := NewEntry(id, title, status, now, now)
	if err != nil {
		return Entry{}, err
	}
	if _, exists := l.entries[entry.ID]; exists {
		return Entry{}, newDuplicateID(entry.ID)
	}
	l.entries[entry.ID] = entry
	return entry, nil
}

// UpdateStatus sets the status of an existing sprint and refreshes its
// updated_at stamp. Fails with NOT_FOUND for an unknown id and
// INVALID_STATUS for a status outside the enum.
//
// Moving a sprint to in_progress while a different sprint is already
// in_progress fails with IN_PROGRESS_CONFLICT: the ledger enforces
// at-most-one active sprint for its own writes. Re-starting the sprint
// that is already active is allowed.
func (l *Ledger) UpdateStatus(id string, status Status) (Entry, error) {
	normID, err := NormalizeID(id)
	if err != nil {
		return Entry{}, err
	}
	if !status.Valid() {
		return Entry{}, newInvalidStatus(string(status))
	}
	entry, ok := l.entries[normID]
	if !ok {
		return Entry{}, newNotFound(normID)
	}
	if status == StatusInProgress {
		if active, ok := l.InProgress(); ok && active.ID != normID {
			return Entry{}, newInProgressConflict(normID, active.ID)
		}
	}
	entry.Status = status
	entry.UpdatedAt = timestamp(l.clock)
	l.entries[normID] = entry
	return entry, nil
}

// UpdateTitle sets the title of an existing sprint and refreshes its
// updated_at stamp. Fails with NOT_FOUND for an unknown id.
func (l *Ledger) UpdateTitle(id, title string) (Entry, error) {
	normID, err := NormalizeID(id)
	if err != nil {
		return Entry{}, err
	}
	entry, ok := l.entries[normID]
	if !ok {
		return Entry{}, newNotFound(normID)
	}
	normTitle := NormalizeTitle(title)
	if strings.ContainsAny(normTitle, "\t\n\r") {
		return Entry{}, newInvalidTitle(title)
	}
	entry.Title = normTitle
	entry.UpdatedAt = timestamp(l.clock)
	l.entries[normID] = entry
	return entry, nil
}

// Get looks up a sprint by id, accepting any normalizable form.
func (l *Ledger) Get(id string) (Entry, bool) {
	normID, err := NormalizeID(id)
	if err != nil {
		return Entry{}, false
	}
	entry, ok := l.entries[normID]
	return entry, ok
}

// Entries returns all entries in ascending sprint-number order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, entry := range l.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SprintNumber() < out[j].SprintNumber()
	})
	return out
}

// Len returns the total number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// ByStatus returns all entries with the given status in ascending
// sprint-number order.
func (l *Ledger) ByStatus(status Status) []Entry {
	var out []Entry
	for _, entry := range l.Entries() {
		if entry.Status == status {
			out = append(out, entry)
		}
	}
	return out
}

// NextPlanned returns the planned sprint with the lowest number, or
// ok=false when no planned sprints exist.
func (l *Ledger) NextPlanned() (Entry, bool) {
	planned := l.ByStatus(StatusPlanned)
	if len(planned) == 0 {
		return Entry{}, false
	}
	return planned[0], true
}

// InProgress returns the in_progress sprint, or ok=false when none is
// active. A hand-edited file can hold several in_progress rows; in that
// case the lowest sprint number wins, so the answer is deterministic.
func (l *Ledger) InProgress() (Entry, bool) {
	active := l.ByStatus(StatusInProgress)
	if len(active) == 0 {
		return Entry{}, false
	}
	return active[0], true
}

// CountByStatus counts entries per status. All four statuses are always
// present in the result, zero-valued when empty.
func (l *Ledger) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, s := range Statuses() {
		counts[s] = 0
	}
	for _, entry := range l.entries {
		counts[entry.Status]++
	}
	return counts
}
