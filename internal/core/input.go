package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move up
	ActionDown            // S, Down arrow - move down
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionInteract        // I - hold near an object to perform a task
	ActionUse             // P - open the keypad or read the notes
	ActionConfirm         // Enter - submit the keypad code
	ActionErase           // Backspace - delete the last keypad digit
	ActionBack            // Escape - close the topmost overlay
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionInteract:
		return "Interact"
	case ActionUse:
		return "Use"
	case ActionConfirm:
		return "Confirm"
	case ActionErase:
		return "Erase"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
//
// It carries both forms the input source provides: discrete key-down and
// key-up edges observed during the tick, and the polled held state of every
// key at the end of it. Text collects printable runes typed during the tick,
// in order.
type InputFrame struct {
	Pressed  map[Action]bool
	Released map[Action]bool
	Held     map[Action]bool
	Text     []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed:  make(map[Action]bool),
		Released: make(map[Action]bool),
		Held:     make(map[Action]bool),
	}
}

// Set marks an action as pressed (key-down edge) for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the action had a key-down edge this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Release marks a key-up edge for the action.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// WasReleased returns true if the action had a key-up edge this frame.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// Hold sets the polled held state of an action.
func (f *InputFrame) Hold(a Action, held bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if held {
		f.Held[a] = true
	} else {
		delete(f.Held, a)
	}
}

// IsHeld returns the polled held state of an action.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Type appends a typed rune.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Clear resets the edge events and typed text for the next frame.
// Held state is polled state and survives until the source changes it.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
	f.Text = f.Text[:0]
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Text = append([]rune(nil), f.Text...)
	return clone
}
