package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.homebound/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// ReleaseWindow is how long a held key survives without a repeat.
	ReleaseWindow time.Duration

	// Logger receives server and per-session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:       ":23234",
		DBPath:        "~/.homebound/runs.db",
		IdleTimeout:   30 * time.Minute,
		TickRate:      60,
		ReleaseWindow: DefaultReleaseWindow,
	}
}

// SSHServer wraps a Wish SSH server that hosts one run per session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	history History
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "homebound-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage
	} else {
		srv.store = store
		srv.history = store
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".homebound", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	// Create session model that handles menu + game flow
	model := NewSessionModel(s.history, cfg, Options{
		Logger:        s.logger.With("user", sshSession.User()),
		ReleaseWindow: s.config.ReleaseWindow,
		AllowBack:     true,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("cannot close run history", "error", err)
		}
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: menu -> run -> menu, with the
// run history screen reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	history    History
	config     core.RuntimeConfig
	opts       Options
	menu       MenuModel
	scoreboard *ScoreboardModel
	run        *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(history History, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		history: history,
		config:  cfg,
		opts:    opts,
		menu:    NewMenuModel(history, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.run != nil:
		return m.updateRun(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Check if user quit
	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		board := NewScoreboardModel(m.history, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &board
		return m, board.Init()
	}

	// Check if a map was selected
	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.MapID)
		if err != nil {
			// Shouldn't happen since menu only shows registered maps
			m.menu = NewMenuModel(m.history, m.config)
			return m, nil
		}

		var recorder RunRecorder
		if m.history != nil {
			recorder = m.history
		}
		run := NewModel(game, recorder, m.config, m.opts)
		m.run = &run
		return m, m.run.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates while the run history is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = &board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.menu = NewMenuModel(m.history, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRun handles updates when a run is in progress.
func (m SessionModel) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.run.Update(msg)
	if run, ok := newModel.(Model); ok {
		m.run = &run
	}

	// Check if user left the run (back to menu)
	if m.run.BackToMenu() {
		m.run = nil
		// Reset menu state so the statistics include the run
		m.menu = NewMenuModel(m.history, m.config)
		return m, m.menu.Init()
	}

	// Check if user quit entirely
	if m.run.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.run != nil:
		return m.run.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
