package ledger

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Status is the lifecycle state of a sprint.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
)

// Statuses returns the four valid statuses in their canonical order.
func Statuses() []Status {
	return []Status{StatusPlanned, StatusInProgress, StatusCompleted, StatusSkipped}
}

// Valid reports whether s is one of the four valid statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", newInvalidStatus(raw)
	}
	return s, nil
}

// TimeFormat is the timestamp layout used in the ledger file:
// ISO-8601 UTC with second precision.
const TimeFormat = "2006-01-02T15:04:05Z"

// Entry is one sprint record in the ledger.
//
// Timestamps are carried as preformatted strings so a load/save cycle
// reproduces rows byte-for-byte.
type Entry struct {
	ID        string
	Title     string
	Status    Status
	CreatedAt string
	UpdatedAt string
}

// NormalizeID canonicalizes a sprint id to its zero-padded 3-digit form.
// Any string that parses as a non-negative integer is accepted: "7", "07"
// and "007" all normalize to "007". Normalization is idempotent.
func NormalizeID(raw string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return "", newInvalidID(raw)
	}
	return fmt.Sprintf("%03d", n), nil
}

// NormalizeTitle canonicalizes a title to Unicode NFC so titles typed on
// different platforms compare equal during sync.
func NormalizeTitle(title string) string {
	return norm.NFC.String(strings.TrimSpace(title))
}

// NewEntry constructs a validated Entry. The id is normalized, the title
// is NFC-normalized and checked for characters the row format cannot
// carry, and the status must be one of the four valid values.
func NewEntry(id, title string, status Status, createdAt, updatedAt string) (Entry, error) {
	normID, err := NormalizeID(id)
	if err != nil {
		return Entry{}, err
	}
	if !status.Valid() {
		return Entry{}, newInvalidStatus(string(status))
	}
	normTitle := NormalizeTitle(title)
	if strings.ContainsAny(normTitle, "\t\n\r") {
		return Entry{}, newInvalidTitle(title)
	}
	return Entry{
		ID:        normID,
		Title:     normTitle,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// SprintNumber returns the numeric value of the id. It is the universal
// sort and comparison key; the zero-padded string form is display only.
func (e Entry) SprintNumber() int {
	n, _ := strconv.Atoi(e.ID)
	return n
}

// DocPath returns the conventional path of the sprint's companion
// document. Display only; the ledger never reads or writes it.
func (e Entry) DocPath() string {
	return path.Join("docs", "sprints", fmt.Sprintf("SPRINT-%s.md", e.ID))
}

// MarshalRow serializes the entry as one TSV row of five fields in fixed
// order: id, title, status, created_at, updated_at.
func (e Entry) MarshalRow() string {
	return strings.Join([]string{e.ID, e.Title, string(e.Status), e.CreatedAt, e.UpdatedAt}, "\t")
}

// UnmarshalRow parses a TSV row produced by MarshalRow. A row that does
// not split into exactly five fields fails with MALFORMED_RECORD.
// UnmarshalRow(e.MarshalRow()) is field-equal to e for any valid entry.
func UnmarshalRow(line string) (Entry, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) != 5 {
		return Entry{}, newMalformedRecord(line)
	}
	return NewEntry(fields[0], fields[1], Status(fields[2]), fields[3], fields[4])
}
