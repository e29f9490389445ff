package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	c := NewManualClock()
	if c.Now() != 0 {
		t.Fatalf("new clock should start at 0, got %v", c.Now())
	}

	c.Advance(1500 * time.Millisecond)
	c.Advance(-time.Second) // Ignored, clock is monotonic
	c.Advance(500 * time.Millisecond)

	if c.Now() != 2*time.Second {
		t.Errorf("Now() = %v, expected 2s", c.Now())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if b < a {
		t.Errorf("system clock went backwards: %v then %v", a, b)
	}
}
