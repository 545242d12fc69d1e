package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := MapKeyToMenuAction(tc.msg); got != tc.want {
				t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyEventUsesTeaNames(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, "w"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "enter"},
	}

	for _, tc := range tests {
		if got := keyEvent(tc.msg); got.Key != tc.want || got.Released {
			t.Errorf("keyEvent(%v) = %+v, expected key %q", tc.msg, got, tc.want)
		}
	}
}
