package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Clock drives wall-clock timers inside the game. Nil means the platform
	// monotonic clock; tests inject a ManualClock.
	Clock Clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score (happiness)
	TasksDone  int  // Tasks completed this run
	TasksTotal int  // Tasks in the run
	GameOver   bool // Whether the game has ended in a loss
	Won        bool // Whether every task has been completed
}

// Finished reports whether the run reached a terminal outcome.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// EventKind classifies something notable that happened during a tick.
type EventKind string

const (
	EventTaskCompleted EventKind = "task_completed"
	EventAllTasksDone  EventKind = "all_tasks_done"
	EventBadTask       EventKind = "bad_task"
	EventCodeRejected  EventKind = "code_rejected"
	EventGameOver      EventKind = "game_over"
)

// Event is emitted by a game step for the platform to log or react to.
type Event struct {
	Kind    EventKind
	Message string
	Value   int // Kind-specific number, e.g. the happiness penalty
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
