package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "CRANE", core.ColorLetter, core.ColorTileExact)
	s.DrawText(0, 1, "hello")

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.Ascii)

	lines := strings.Split(RenderScreen(r, s), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "CRANE       ", lines[0])
	assert.Equal(t, "hello       ", lines[1])
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColor(0, 0, "AB", core.ColorLetter, core.ColorTileExact)

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.TrueColor)

	out := RenderScreen(r, s)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "AB")
	assert.True(t, strings.HasSuffix(out, "   "), "default cells are written unstyled")
}
