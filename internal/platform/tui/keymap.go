package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame applies all actions a key implies to the given frame.
// Space maps to both Jump and Fire so the same key works in every game.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	case " ":
		frame.Set(core.ActionJump)
		frame.Set(core.ActionFire)
	case "w", "up":
		frame.Set(core.ActionUp)
	case "s", "down":
		frame.Set(core.ActionDown)
	case "a", "left":
		frame.Set(core.ActionLeft)
	case "d", "right":
		frame.Set(core.ActionRight)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "b", "esc":
		frame.Set(core.ActionBack)
	case "p":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	}
	return false
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
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
