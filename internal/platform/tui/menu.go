package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

// MenuItem represents a selectable map in the menu.
type MenuItem struct {
	MapID string
	Title string
	Stats *storage.MapStats // Nil when the map was never played
}

// MenuModel is the Bubble Tea model for the map picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	help           help.Model
	keys           GameKeyMap
	showControls   bool
	quitting       bool
	selected       *MenuItem // Set when user selects a map
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing every registered map.
// A nil history shows the maps without statistics.
func NewMenuModel(history History, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.MapStats
	if history != nil {
		// A broken database only costs the statistics column.
		stats, _ = history.AllMapStats()
	}

	maps := registry.List()
	items := make([]MenuItem, 0, len(maps))
	for _, g := range maps {
		items = append(items, MenuItem{
			MapID: g.ID,
			Title: g.Title,
			Stats: stats[g.ID],
		})
	}

	h := help.New()
	h.ShowAll = true

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		help:   h,
		keys:   DefaultGameKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the run
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard

	case MenuActionHelp:
		m.showControls = !m.showControls

	case MenuActionBack:
		m.showControls = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  H O M E B O U N D  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a home", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(dimStyle.Render("No maps registered."), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		stats := summarizeStats(item.Stats)
		b.WriteString(centerText(line+"  "+dimStyle.Render(stats), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showControls {
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	} else {
		controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Runs  |  ?: Controls  |  Q: Quit"
		b.WriteString(centerText(dimStyle.Render(controls), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// summarizeStats renders the one-line history next to a map title.
func summarizeStats(s *storage.MapStats) string {
	if s == nil || s.Runs == 0 {
		return "never played"
	}
	runs := "runs"
	if s.Runs == 1 {
		runs = "run"
	}
	return fmt.Sprintf("%d %s, %d won, best %d tasks", s.Runs, runs, s.Wins, s.BestTasks)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring styling escapes.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	MapID           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.quitting || m.selected == nil:
		result.Quit = true
	default:
		result.MapID = m.selected.MapID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(history History, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(history, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
