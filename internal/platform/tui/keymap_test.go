package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyPlaying(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"letter", runes("a"), core.ActionLetter, false},
		{"uppercase letter", runes("Q"), core.ActionLetter, false},
		{"q is typeable", runes("q"), core.ActionLetter, false},
		{"digit", runes("7"), core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionErase, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"y while playing", runes("y"), core.ActionLetter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg, false)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyGameOver(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"y", runes("y"), core.ActionRestart},
		{"Y", runes("Y"), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"n", runes("n"), core.ActionBack},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"other letter", runes("x"), core.ActionNone},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg, true)
			assert.Equal(t, tt.action, action)
			assert.False(t, quit)
		})
	}
}

func TestMapKeyToFrameTypesPastedLetters(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	quit := km.MapKeyToFrame(runes("ab1C"), &frame, false)

	assert.False(t, quit)
	assert.Equal(t, []core.InputEvent{
		{Action: core.ActionLetter, Rune: 'a'},
		{Action: core.ActionLetter, Rune: 'b'},
		{Action: core.ActionLetter, Rune: 'C'},
	}, frame.Events)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runes("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionStats, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runes("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runes("x")))
}
