package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hoop-runner/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Start   key.Binding
	Jump    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("space/enter", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump (twice to double jump)"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r/space", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Jump, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.Restart},
		{k.Help, k.Quit},
	}
}

// ForState enables only the bindings that do something in the given state,
// so the help bar tracks the title, playing and game over screens.
func (k KeyMap) ForState(s core.GameState) KeyMap {
	title := !s.Started
	playing := s.Started && !s.GameOver

	k.Start.SetEnabled(title)
	k.Jump.SetEnabled(playing)
	k.Restart.SetEnabled(s.GameOver)
	return k
}

// Action translates a key message to a game action. Disabled bindings never
// match, so call it on the full map rather than a ForState copy.
// Quit is reported as core.ActionQuit; unknown keys as core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}
