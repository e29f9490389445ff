package core

import (
	"sync"
	"time"
)

// Clock is a monotonic time source. Now returns the time elapsed since the
// clock's origin; it never goes backwards.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose origin is the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the elapsed time since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a clock advanced explicitly, for deterministic tests and replays.
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

// NewManualClock creates a manual clock starting at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}
