package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(4, 1)

	s.SetCell(1, 0, Cell{Rune: 'a', Fg: ColorLetter, Bg: ColorTileExact})
	s.Set(1, 0, 'b')

	cell := s.GetCell(1, 0)
	assert.Equal(t, 'b', cell.Rune)
	assert.Equal(t, ColorLetter, cell.Fg)
	assert.Equal(t, ColorTileExact, cell.Bg)
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.FillRect(NewRect(0, 0, 3, 3), ColorTileAbsent)
	s.DrawText(0, 1, "xyz")

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, Cell{Rune: ' '}, s.GetCell(x, y))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawText(2, 0, "Hello")
	assert.Equal(t, "  Hello   ", s.Row(0))

	// Clipped at the right edge
	s.DrawText(8, 1, "World")
	assert.Equal(t, "        Wo", s.Row(1))
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(5, 1)

	s.DrawTextColor(0, 0, "ab", ColorTitle, ColorTileEmpty)

	assert.Equal(t, Cell{Rune: 'a', Fg: ColorTitle, Bg: ColorTileEmpty}, s.GetCell(0, 0))
	assert.Equal(t, Cell{Rune: 'b', Fg: ColorTitle, Bg: ColorTileEmpty}, s.GetCell(1, 0))
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(2, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawTextCentered(0, "abcd", ColorText)
	assert.Equal(t, "   abcd   ", s.Row(0))
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(7, 1)

	s.DrawTextCentered(0, "─•─", ColorText)
	assert.Equal(t, "  ─•─  ", s.Row(0))
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 5)

	s.FillRect(NewRect(1, 1, 2, 3), ColorTilePresent)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := ColorDefault
			if x >= 1 && x < 3 && y >= 1 && y < 4 {
				want = ColorTilePresent
			}
			assert.Equal(t, want, s.GetCell(x, y).Bg, "bg at (%d, %d)", x, y)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)

	s.DrawBox(NewRect(0, 0, 5, 4), ColorBorder)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		assert.Equal(t, want, s.Row(y))
	}
	assert.Equal(t, ColorBorder, s.GetCell(0, 0).Fg)
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)

	s.DrawBox(NewRect(0, 0, 1, 1), ColorBorder)
	assert.Equal(t, ' ', s.Get(0, 0))
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	assert.Equal(t, "abc\ndef", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawText(0, 0, "Hello")

	s.Resize(3, 2)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, "Hel", s.Row(0))

	s.Resize(6, 3)
	assert.Equal(t, "Hel   ", s.Row(0))
	assert.Equal(t, strings.Repeat(" ", 6), s.Row(2))
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 1)
	assert.Equal(t, "    ", s.Row(5))
	assert.Equal(t, "    ", s.Row(-1))
}
