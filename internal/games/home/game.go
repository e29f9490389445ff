package home

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/home/layout"
	"github.com/vovakirdan/homebound/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a Level on one map to the platform's game interface.
type Game struct {
	m       *layout.Map
	runtime core.RuntimeConfig
	cfg     config.HomeConfig
	level   *Level
	err     error
}

// New creates a game for map m.
func New(m *layout.Map) *Game {
	return &Game{m: m}
}

// ID returns the map id.
func (g *Game) ID() string {
	return g.m.ID
}

// Title returns the map display name.
func (g *Game) Title() string {
	return g.m.Name
}

// Reset starts a fresh run on the same map.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// A broken config the user named stops the level; the search path
	// already skips unreadable files and falls back to the defaults.
	cfg, err := config.LoadHome(configPath)
	if err != nil {
		g.level, g.err = nil, err
		return
	}
	if difficultyPreset != "" {
		config.ApplyHomePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	clock := runtime.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	rng := rand.New(rand.NewSource(runtime.Seed))

	g.level, g.err = NewLevel(cfg, g.m, clock, rng)
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level == nil {
		return core.StepResult{State: g.State()}
	}
	return g.level.Step(in)
}

// State returns the run summary. A level that failed to build reports game over.
func (g *Game) State() core.GameState {
	if g.level == nil {
		return core.GameState{GameOver: true}
	}
	return g.level.State()
}

// Err returns the error that prevented the level from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Level exposes the running level.
func (g *Game) Level() *Level {
	return g.level
}

// Vignette returns the opacity of the darkening around the view, or zero
// when the vignette is disabled.
func (g *Game) Vignette() uint8 {
	if g.level == nil || !g.cfg.Render.Vignette {
		return 0
	}
	return g.level.happiness.Opacity()
}

// Render draws the world around the player, darkens it by happiness, then
// draws the HUD and overlays on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.level == nil {
		drawPanel(dst, "Cannot start level", []string{fmt.Sprint(g.err)}, core.ColorRed, panelCenter)
		return
	}

	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	for _, cmd := range g.level.Frame(dst.Width()*cw, dst.Height()*ch) {
		cmd.Image.Blit(dst, core.FloorDiv(cmd.X, cw), core.FloorDiv(cmd.Y, ch))
	}
	ApplyVignette(dst, g.Vignette())

	renderPresentation(dst, g.level.Presentation())
}

// RegisterMaps registers a game for every map. Maps whose id is already
// taken are reported and skipped.
func RegisterMaps(maps []*layout.Map) error {
	var err error
	for _, m := range maps {
		if registry.Exists(m.ID) {
			err = fmt.Errorf("map %q already registered", m.ID)
			continue
		}
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
	return err
}

// Register the built-in maps with the registry
func init() {
	maps, err := layout.Embedded()
	if err != nil {
		panic(fmt.Sprintf("home: embedded maps: %v", err))
	}
	if err := RegisterMaps(maps); err != nil {
		panic(fmt.Sprintf("home: %v", err))
	}
}
