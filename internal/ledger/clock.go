package ledger

import "time"

// Clock supplies the current time for created_at/updated_at stamps.
//
// The ledger never calls time.Now directly; injecting the clock keeps
// timestamp-dependent behavior deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by wall time.
type SystemClock struct{}

// Now returns the current wall time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// timestamp formats a clock reading as a ledger timestamp string.
func timestamp(c Clock) string {
	return c.Now().UTC().Format(TimeFormat)
}
