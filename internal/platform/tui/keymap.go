package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crop-rush/internal/core"
)

// isQuitKey reports whether msg is a global quit key.
func isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// keyEvent converts a Bubble Tea key message into a game key event.
// Terminals only report presses, so Released is never set here.
func keyEvent(msg tea.KeyMsg) core.KeyEvent {
	return core.KeyEvent{Key: msg.String()}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
