package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(run storage.Run) (string, error)
}

// History is the run store seen by the menu, the scoreboard and the game.
// *storage.Store implements it.
type History interface {
	RunRecorder
	BestRuns(mapID string, limit int) ([]storage.Run, error)
	AllMapStats() (map[string]*storage.MapStats, error)
}

// Options tune a game model beyond the runtime config.
type Options struct {
	Logger        *log.Logger
	ReleaseWindow time.Duration // See DefaultReleaseWindow
	AllowBack     bool          // Esc after the run ends returns to the menu
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	keyState   *KeyState
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	ticks      int
	allowBack  bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables run history.
func NewModel(game registry.Game, store RunRecorder, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("map", game.ID()),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		keyState:   NewKeyState(opts.ReleaseWindow),
		inputFrame: core.NewInputFrame(),
		allowBack:  opts.AllowBack,
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	// A finished run can be restarted or left. After a win the player may
	// still walk around, so other keys fall through to the game.
	if m.gameState.Finished() {
		switch action {
		case core.ActionRestart:
			m.inputFrame.Set(core.ActionRestart)
			return m, nil
		case core.ActionBack:
			if m.allowBack {
				m.backToMenu = true
				return m, tea.Quit
			}
		}
		if m.gameState.GameOver {
			return m, nil
		}
	}

	switch {
	case action == core.ActionNone:
	case holdable(action):
		if m.keyState.Press(action, m.now()) {
			m.inputFrame.Set(action)
			m.inputFrame.Hold(action, true)
		}
	case action != core.ActionRestart:
		m.inputFrame.Set(action)
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.inputFrame.Type(r)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The world view follows the
// player, so a resize only changes how much of it is visible.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Finished() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.ticks = 0
		m.started = time.Time{}
		m.keyState.Reset()
		m.inputFrame = core.NewInputFrame()
		m.logger.Info("run restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	now := m.now()
	if m.started.IsZero() {
		m.started = now
	}
	m.keyState.Sync(now, &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++
	m.logEvents(result.Events)

	switch {
	case m.gameState.Won:
		m.recordRun(storage.OutcomeWon)
	case m.gameState.GameOver:
		m.recordRun(storage.OutcomeLost)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventGameOver:
			m.logger.Warn(e.Message, "event", e.Kind, "tasks", e.Value)
		case core.EventCodeRejected:
			m.logger.Debug(e.Message, "event", e.Kind)
		default:
			m.logger.Info(e.Message, "event", e.Kind, "value", e.Value)
		}
	}
}

// recordRun saves the current run once. Runs that never ticked are skipped.
func (m *Model) recordRun(outcome storage.Outcome) {
	if m.runSaved || m.ticks == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		MapID:      m.game.ID(),
		Outcome:    outcome,
		TasksDone:  m.gameState.TasksDone,
		TasksTotal: m.gameState.TasksTotal,
		Happiness:  m.gameState.Score,
		Duration:   m.now().Sub(m.started),
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("cannot save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "outcome", outcome, "tasks", run.TasksDone, "happiness", run.Happiness)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".homebound", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store RunRecorder, cfg core.RuntimeConfig, opts Options) error {
	_, err := RunModel(game, store, cfg, opts)
	return err
}

// RunModel runs a game until the player quits or goes back to the menu and
// returns the final model.
func RunModel(game registry.Game, store RunRecorder, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := finalModel.(Model); ok {
		return m, nil
	}
	return model, nil
}
