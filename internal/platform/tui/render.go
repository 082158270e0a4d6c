package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorTitle:        lipgloss.Color("#f1f1f2"),
	core.ColorText:         lipgloss.Color("#e6e9ec"),
	core.ColorMuted:        lipgloss.Color("#818384"),
	core.ColorBorder:       lipgloss.Color("#3a3a3c"),
	core.ColorBorderActive: lipgloss.Color("#565758"),
	core.ColorLetter:       lipgloss.Color("#ffffff"),
	core.ColorTileEmpty:    lipgloss.Color("#3a3a3c"),
	core.ColorTileExact:    lipgloss.Color("#538d4e"),
	core.ColorTilePresent:  lipgloss.Color("#b59f3b"),
	core.ColorTileAbsent:   lipgloss.Color("#3a3a3c"),
	core.ColorPrompt:       lipgloss.Color("#646469"),
}

// cellStyle builds the style for a foreground/background pair.
func cellStyle(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	s := r.NewStyle()
	if c, ok := palette[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		s = s.Background(c)
	}
	if fg == core.ColorTitle || fg == core.ColorLetter {
		s = s.Bold(true)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses the process default.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(r, start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
