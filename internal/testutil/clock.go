// Package testutil provides deterministic test doubles shared across AIRES
// packages.
package testutil

import (
	"sync"
	"time"
)

// Clock abstracts wall-clock reads so that components deriving timestamps
// (storage paths, log entries) can be tested deterministically.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a thread-safe clock pinned to a settable instant.
//
// Unlike SystemClock, FixedClock can be reset for test reuse, so the same
// scenario produces identical timestamps on every run.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a FixedClock pinned to the given instant (converted
// to UTC).
func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{now: at.UTC()}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set pins the clock to a new instant (converted to UTC).
func (c *FixedClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at.UTC()
}
