package tui

import (
	"time"

	"github.com/vovakirdan/homebound/internal/core"
)

// DefaultReleaseWindow is how long a key counts as held after its last
// repeat. Terminals send no key-up events, only auto-repeated key-downs, and
// the first repeat usually arrives about half a second after the press.
const DefaultReleaseWindow = 550 * time.Millisecond

// KeyState rebuilds held keys and key-up edges from terminal key repeats.
type KeyState struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewKeyState creates a tracker. A non-positive window uses the default.
func NewKeyState(window time.Duration) *KeyState {
	if window <= 0 {
		window = DefaultReleaseWindow
	}
	return &KeyState{window: window, lastSeen: make(map[core.Action]time.Time)}
}

// Press records a key-down or repeat at now. It returns true only for the
// initial press, which is the one that should become a key-down edge.
func (k *KeyState) Press(a core.Action, now time.Time) bool {
	_, held := k.lastSeen[a]
	k.lastSeen[a] = now
	return !held
}

// Sync releases keys not seen within the window and writes the held state
// and any release edges into frame.
func (k *KeyState) Sync(now time.Time, frame *core.InputFrame) {
	for a, seen := range k.lastSeen {
		if now.Sub(seen) > k.window {
			delete(k.lastSeen, a)
			frame.Hold(a, false)
			frame.Release(a)
			continue
		}
		frame.Hold(a, true)
	}
}

// Held reports whether the action is currently considered held.
func (k *KeyState) Held(a core.Action) bool {
	_, ok := k.lastSeen[a]
	return ok
}

// Reset forgets every held key.
func (k *KeyState) Reset() {
	clear(k.lastSeen)
}
