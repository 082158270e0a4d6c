package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Type('a')
	f.Type('b')
	f.Set(ActionErase)
	f.Type('c')

	want := []InputEvent{
		{Action: ActionLetter, Rune: 'a'},
		{Action: ActionLetter, Rune: 'b'},
		{Action: ActionErase},
		{Action: ActionLetter, Rune: 'c'},
	}
	assert.Equal(t, want, f.Events)
	assert.True(t, f.Has(ActionErase))
	assert.False(t, f.Has(ActionConfirm))
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Type('x')

	f.Clear()

	assert.Empty(t, f.Events)
	assert.False(t, f.Has(ActionConfirm))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Confirm", ActionConfirm.String())
	assert.Equal(t, "Letter", ActionLetter.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
