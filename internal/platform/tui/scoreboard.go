package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show map list sidebar
	sidebarWidth       = 20  // Width of map list sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextMap  key.Binding
	PrevMap  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMap, k.PrevMap, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMap, k.PrevMap},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev map"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next map"),
		),
		NextMap: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next map"),
		),
		PrevMap: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev map"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	maps        []registry.GameInfo // List of available maps
	mapCursor   int                 // Currently selected map index
	history     History             // Run storage
	runs        []storage.Run
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show map list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(history History, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		maps:        registry.List(),
		history:     history,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	// Initialize table
	m.table = m.createTable()

	// Load runs for first map
	if len(m.maps) > 0 {
		m.loadRuns(m.maps[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Outcome", Width: 8},
		{Title: "Tasks", Width: 6},
		{Title: "Happy", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "When", Width: 14},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give spare width to the date column
	if spare := tableWidth - 60; spare > 0 {
		columns[5].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs for the given map ID.
func (m *ScoreboardModel) loadRuns(mapID string) {
	m.runs, m.loadErr = nil, nil
	if m.history != nil {
		m.runs, m.loadErr = m.history.BestRuns(mapID, maxRuns)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(i+1, r)
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMap), key.Matches(msg, m.keys.Right):
			if len(m.maps) > 0 {
				m.mapCursor = (m.mapCursor + 1) % len(m.maps)
				m.loadRuns(m.maps[m.mapCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMap), key.Matches(msg, m.keys.Left):
			if len(m.maps) > 0 {
				m.mapCursor--
				if m.mapCursor < 0 {
					m.mapCursor = len(m.maps) - 1
				}
				m.loadRuns(m.maps[m.mapCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST RUNS"
	if len(m.maps) > 0 {
		title = fmt.Sprintf("BEST RUNS - %s", m.maps[m.mapCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: map tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with sidebar for map selection.
func (m ScoreboardModel) renderWideLayout() string {
	// Sidebar (map list)
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Maps\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.maps {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.mapCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableContent := m.renderTableContent()
	tableRendered := tableStyle.Render(tableContent)

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the scoreboard with map tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	// Map tabs (horizontal)
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.maps))
	for i, g := range m.maps {
		shortName := g.Title
		if len(shortName) > 12 {
			shortName = shortName[:11] + "."
		}
		if i == m.mapCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	// Wrap tabs if needed
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.maps) > 0 {
		// Just show current map with arrows
		current := m.maps[m.mapCursor].Title
		tabLine = fmt.Sprintf("< %s >", current)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.loadErr != nil {
		return emptyStyle.Render("Run history unavailable:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunRow formats one run as a table row.
func RunRow(rank int, r storage.Run) table.Row {
	return table.Row{
		fmt.Sprintf("#%d", rank),
		string(r.Outcome),
		fmt.Sprintf("%d/%d", r.TasksDone, r.TasksTotal),
		fmt.Sprintf("%d", r.Happiness),
		FormatDuration(r.Duration),
		humanize.Time(r.CreatedAt),
	}
}

// FormatDuration renders a run duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(history History, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(history, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
