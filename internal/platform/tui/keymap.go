package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/homebound/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Interact key.Binding
	Use      key.Binding
	Confirm  key.Binding
	Erase    key.Binding
	Back     key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Interact, k.Use, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Interact, k.Use, k.Confirm, k.Erase},
		{k.Back, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "walk up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "walk down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "walk right"),
		),
		Interact: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "hold to do a task"),
		),
		Use: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "phone/notes"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dial"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase digit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// holdable reports whether an action has a held state the game polls.
// Only these actions get synthesized key-up edges.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionInteract:
		return true
	}
	return false
}

// Action translates a key message to a game action.
// Returns ActionNone for keys without a binding.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Interact):
		return core.ActionInteract
	case key.Matches(msg, k.Use):
		return core.ActionUse
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Erase):
		return core.ActionErase
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionHelp
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "?":
		return MenuActionHelp
	}

	return MenuActionNone
}
