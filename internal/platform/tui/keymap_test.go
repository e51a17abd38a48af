package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hoop-runner/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", keyRune('w'), core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r", keyRune('r'), core.ActionRestart},
		{"q", keyRune('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"x", keyRune('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %s, expected %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapActionFollowsBindings(t *testing.T) {
	km := DefaultKeyMap()
	km.Restart = key.NewBinding(key.WithKeys("n"))
	km.Start = key.NewBinding(key.WithKeys("s"))

	if got := km.Action(keyRune('n')); got != core.ActionRestart {
		t.Errorf("Action(n) = %s, expected %s", got, core.ActionRestart)
	}
	if got := km.Action(keyRune('r')); got != core.ActionNone {
		t.Errorf("Action(r) = %s after rebinding, expected %s", got, core.ActionNone)
	}
	if got := km.Action(keyRune('s')); got != core.ActionConfirm {
		t.Errorf("Action(s) = %s, expected %s", got, core.ActionConfirm)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyEnter}); got != core.ActionNone {
		t.Errorf("Action(enter) = %s after rebinding, expected %s", got, core.ActionNone)
	}
}

func TestKeyMapForState(t *testing.T) {
	km := DefaultKeyMap()

	title := km.ForState(core.GameState{})
	if !title.Start.Enabled() || title.Jump.Enabled() || title.Restart.Enabled() {
		t.Error("title screen should only offer start")
	}

	playing := km.ForState(core.GameState{Started: true})
	if playing.Start.Enabled() || !playing.Jump.Enabled() || playing.Restart.Enabled() {
		t.Error("playing should only offer jump")
	}

	over := km.ForState(core.GameState{Started: true, GameOver: true})
	if over.Start.Enabled() || over.Jump.Enabled() || !over.Restart.Enabled() {
		t.Error("game over should only offer restart")
	}

	if !km.Jump.Enabled() {
		t.Error("ForState should not mutate the receiver")
	}
}
