// Package registry keeps the playable maps of homebound. Each map registers a
// factory, usually from an init function, and the CLI, menu and SSH sessions
// create runs by map id without knowing how a map is built.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/homebound/internal/core"
)

// Game is one run on a map.
// It holds pure simulation state; the platform owns input mapping, timing and
// terminal output.
type Game interface {
	// ID returns the map id (e.g., "apartment").
	// Used for CLI arguments and as the key of the run history.
	ID() string

	// Title returns the map name shown in menus (e.g., "The Apartment").
	Title() string

	// Reset starts a fresh run. Called once at start and again on restart.
	// The RuntimeConfig provides screen size, RNG seed and clock.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one tick with this tick's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into the screen buffer.
	Render(dst *core.Screen)

	// State returns happiness, task progress and the outcome so far.
	State() core.GameState
}

// GameInfo describes a registered map.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh run on one map.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a map. The title is read once from a throwaway run.
// Panics if the id is taken; callers loading user maps check Exists first.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: map %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered map, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create starts a new run on the map with the given id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown map %q", id)
	}

	return f(), nil
}

// Exists reports whether a map with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
