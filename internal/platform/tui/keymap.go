package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. While the round is over
// only the play-again prompt keys are recognized.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, gameOver bool) (action core.Action, isQuit bool) {
	key := msg.String()

	// Letters are typeable, so only ctrl+c quits
	if key == "ctrl+c" {
		return core.ActionQuit, true
	}

	if gameOver {
		switch key {
		case "y", "Y", "enter":
			return core.ActionRestart, false
		case "n", "N", "esc":
			return core.ActionBack, false
		}
		return core.ActionNone, false
	}

	switch key {
	case "enter":
		return core.ActionConfirm, false
	case "backspace", "ctrl+h":
		return core.ActionErase, false
	case "esc":
		return core.ActionBack, false
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 && isLetter(msg.Runes[0]) {
		return core.ActionLetter, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Every letter
// of a pasted run is typed.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, gameOver bool) bool {
	action, isQuit := km.MapKey(msg, gameOver)
	switch action {
	case core.ActionNone:
	case core.ActionLetter:
		for _, r := range msg.Runes {
			if isLetter(r) {
				frame.Type(r)
			}
		}
	default:
		frame.Set(action)
	}
	return isQuit
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionStats
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionStats
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
