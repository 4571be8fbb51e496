package ledger

import (
	"errors"
	"fmt"
)

// Error represents a domain error raised by ledger operations.
//
// Every failure the ledger can produce carries one of the codes below so
// callers branch on the code rather than parsing message text. Errors are
// surfaced synchronously to the command layer; none are retried or
// swallowed.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ID is the sprint id involved, when one applies.
	ID string
}

// ErrorCode categorizes ledger errors.
type ErrorCode string

const (
	// ErrCodeInvalidID indicates a sprint id that does not parse as a
	// non-negative integer.
	ErrCodeInvalidID ErrorCode = "INVALID_ID"

	// ErrCodeInvalidStatus indicates a status outside the four-value enum.
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// ErrCodeInvalidTitle indicates a title containing a tab or newline,
	// which cannot survive the TSV row format.
	ErrCodeInvalidTitle ErrorCode = "INVALID_TITLE"

	// ErrCodeDuplicateID indicates an Add for an id that already exists.
	ErrCodeDuplicateID ErrorCode = "DUPLICATE_ID"

	// ErrCodeNotFound indicates a mutation or lookup of an unknown id.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeMalformedRecord indicates a backing-file row with the wrong
	// field count. Load aborts on the first such row.
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"

	// ErrCodeInProgressConflict indicates an attempt to start a sprint
	// while a different sprint is already in_progress.
	ErrCodeInProgressConflict ErrorCode = "IN_PROGRESS_CONFLICT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %s (sprint=%s)", e.Code, e.Message, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound returns true if the error is a NOT_FOUND ledger error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsDuplicateID returns true if the error is a DUPLICATE_ID ledger error.
func IsDuplicateID(err error) bool {
	return hasCode(err, ErrCodeDuplicateID)
}

// IsInvalidStatus returns true if the error is an INVALID_STATUS ledger error.
func IsInvalidStatus(err error) bool {
	return hasCode(err, ErrCodeInvalidStatus)
}

// IsMalformedRecord returns true if the error is a MALFORMED_RECORD ledger error.
func IsMalformedRecord(err error) bool {
	return hasCode(err, ErrCodeMalformedRecord)
}

func hasCode(err error, code ErrorCode) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}

func newInvalidID(raw string) *Error {
	return &Error{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("sprint id %q is not a non-negative integer", raw),
	}
}

func newInvalidStatus(status string) *Error {
	return &Error{
		Code:    ErrCodeInvalidStatus,
		Message: fmt.Sprintf("invalid status %q: must be one of %v", status, Statuses()),
	}
}

func newInvalidTitle(title string) *Error {
	return &Error{
		Code:    ErrCodeInvalidTitle,
		Message: fmt.Sprintf("title %q must not contain tabs or newlines", title),
	}
}

func newDuplicateID(id string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateID,
		Message: "sprint already exists",
		ID:      id,
	}
}

func newNotFound(id string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: "sprint not found",
		ID:      id,
	}
}

func newMalformedRecord(line string) *Error {
	return &Error{
		Code:    ErrCodeMalformedRecord,
		Message: fmt.Sprintf("expected 5 tab-separated fields: %q", line),
	}
}

func newInProgressConflict(id, blocking string) *Error {
	return &Error{
		Code:    ErrCodeInProgressConflict,
		Message: fmt.Sprintf("sprint %s is already in progress", blocking),
		ID:      id,
	}
}
