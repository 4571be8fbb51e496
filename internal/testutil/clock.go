package testutil

import (
	"sync"
	"time"
)

// DeterministicClock is a ledger.Clock for tests.
//
// It starts at a fixed instant and advances by a fixed step on every
// Now() call, so created_at/updated_at stamps are reproducible and
// strictly increasing within a test.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// Epoch is the default starting instant: 2024-01-01T00:00:00Z.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewDeterministicClock creates a clock starting at Epoch that advances
// one second per reading.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{now: Epoch, step: time.Second}
}

// NewDeterministicClockAt creates a clock starting at a specific instant.
func NewDeterministicClockAt(start time.Time, step time.Duration) *DeterministicClock {
	return &DeterministicClock{now: start, step: step}
}

// Now returns the current instant and advances the clock by one step.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Freeze stops the clock: subsequent Now() calls return the same instant.
func (c *DeterministicClock) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = 0
}

// Set rewinds or advances the clock to a specific instant.
func (c *DeterministicClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
