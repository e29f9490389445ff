package home

import (
	"time"

	"github.com/vovakirdan/homebound/internal/core"
)

// SessionState is the state of the player's interaction with an object.
type SessionState int

const (
	SessionIdle      SessionState = iota
	SessionHolding                // Interact key held since start
	SessionCodeEntry              // Keypad open
)

// String returns the state name for logs.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionHolding:
		return "holding"
	case SessionCodeEntry:
		return "code_entry"
	default:
		return "unknown"
	}
}

// InteractionSession tracks a hold-to-complete or keypad interaction.
//
// A hold completes its task only if the required object stayed active on
// every check since the hold began; leaving range spoils the hold until the
// key is released and pressed again.
type InteractionSession struct {
	clock   core.Clock
	hold    time.Duration
	state   SessionState
	start   time.Duration
	spoiled bool
}

// NewInteractionSession creates an idle session timed by clock.
func NewInteractionSession(clock core.Clock, hold time.Duration) *InteractionSession {
	return &InteractionSession{clock: clock, hold: hold}
}

// State returns the current state.
func (s *InteractionSession) State() SessionState { return s.state }

// Active reports whether a hold or a keypad session is in progress.
// Bad-task popups are suppressed while this is true.
func (s *InteractionSession) Active() bool { return s.state != SessionIdle }

// BeginHold starts holding if idle and something is in range.
func (s *InteractionSession) BeginHold(anyNear bool) bool {
	if s.state != SessionIdle || !anyNear {
		return false
	}
	s.state = SessionHolding
	s.start = s.clock.Now()
	s.spoiled = false
	return true
}

// ReleaseHold cancels a hold on key-up. Other states are unaffected.
func (s *InteractionSession) ReleaseHold() {
	if s.state == SessionHolding {
		s.state = SessionIdle
	}
}

// OpenCodeEntry switches from idle to keypad entry.
func (s *InteractionSession) OpenCodeEntry() bool {
	if s.state != SessionIdle {
		return false
	}
	s.state = SessionCodeEntry
	return true
}

// CloseCodeEntry returns to idle from keypad entry.
func (s *InteractionSession) CloseCodeEntry() bool {
	if s.state != SessionCodeEntry {
		return false
	}
	s.state = SessionIdle
	return true
}

// Elapsed returns how long the current hold has lasted.
func (s *InteractionSession) Elapsed() time.Duration {
	if s.state != SessionHolding {
		return 0
	}
	return s.clock.Now() - s.start
}

// Progress returns the hold fraction in [0, 1].
func (s *InteractionSession) Progress() float64 {
	if s.hold <= 0 {
		return 1
	}
	return core.ClampF(float64(s.Elapsed())/float64(s.hold), 0, 1)
}

// CheckHold evaluates the hold timeout for the current task. It returns true
// when the task should be marked complete, which ends the hold. Tasks that
// need the keypad never complete by holding.
func (s *InteractionSession) CheckHold(task Task, hasTask, requiredActive bool) bool {
	if s.state != SessionHolding {
		return false
	}
	if !hasTask || task.NeedsCode() || !requiredActive {
		s.spoiled = true
		return false
	}
	if s.spoiled || s.Elapsed() < s.hold {
		return false
	}
	s.state = SessionIdle
	return true
}
