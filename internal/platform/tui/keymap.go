package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beelazy/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Terminals report no key releases, so space is a tap: press and release in
// the same frame. Up holds the bee in flight until down is pressed.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case " ":
		frame.Set(core.ActionFly)
		frame.Set(core.ActionFall)
	case "up", "w", "k":
		frame.Set(core.ActionFly)
	case "down", "s", "j":
		frame.Set(core.ActionFall)
	case "left", "a", "h":
		frame.Set(core.ActionLeft)
	case "right", "d", "l":
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

// MapMouseToFrame updates an input frame based on a mouse message.
// Left press flies, any release falls and motion with the button held drags.
// toWorldX converts the event column to a world x position.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame, toWorldX func(col int) float64) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Set(core.ActionFly)
		}
	case tea.MouseActionRelease:
		frame.Set(core.ActionFall)
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			frame.SetMove(toWorldX(msg.X))
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
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
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
