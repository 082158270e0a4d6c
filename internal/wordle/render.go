package wordle

import (
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Layout constants
const (
	tileW    = 5
	tileH    = 3
	tileGapX = 1
	gridW    = WordLen*tileW + (WordLen-1)*tileGapX
	gridH    = MaxAttempts * tileH

	headerH   = 2 // Title and message lines
	keyboardH = 4 // Three key rows and the help line

	minScreenW = gridW + 2
	minScreenH = headerH + gridH
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

const helpLine = "Enter submit · Backspace erase · Ctrl+C quit"

// Render draws the title, grid, keyboard and any prompt.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w := dst.Width()
	top := g.contentTop(dst.Height())

	dst.DrawTextCentered(top, "W O R D L E", core.ColorTitle)
	if g.message != "" {
		dst.DrawTextCentered(top+1, g.message, core.ColorText)
	}

	gridX := (w - gridW) / 2
	gridY := top + headerH
	g.drawGrid(dst, gridX, gridY)

	if dst.Height()-top >= headerH+gridH+keyboardH {
		g.drawKeyboard(dst, gridY+gridH)
	}

	if g.phase == PhaseRoundOver {
		g.drawPrompt(dst, gridX, gridY)
	}
}

// contentTop vertically centers the layout when there is room for it.
func (g *Game) contentTop(h int) int {
	total := headerH + gridH + keyboardH
	if h <= total {
		return 0
	}
	return (h - total) / 2
}

func (g *Game) drawGrid(dst *core.Screen, x0, y0 int) {
	records := g.round.Records()

	for row := 0; row < MaxAttempts; row++ {
		y := y0 + row*tileH
		for col := 0; col < WordLen; col++ {
			x := x0 + col*(tileW+tileGapX)
			rect := core.NewRect(x, y, tileW, tileH)

			switch {
			case row < len(records):
				rec := records[row]
				p := 1.0
				if g.reveal != nil && g.phase == PhaseSubmitted && row == g.reveal.Row {
					p = g.reveal.Progress(col, g.tick)
				}
				drawFlipTile(dst, rect, rec.Word[col], rec.Feedback[col], p)
			case row == len(records) && g.phase == PhaseAwaitingInput:
				var ch byte
				if col < len(g.current) {
					ch = g.current[col]
				}
				drawOpenTile(dst, rect, ch)
			default:
				drawOpenTile(dst, rect, 0)
			}
		}
	}
}

// drawOpenTile draws an unsubmitted tile, optionally holding a typed letter.
func drawOpenTile(dst *core.Screen, r core.Rect, ch byte) {
	if ch == 0 {
		dst.DrawBox(r, core.ColorBorder)
		return
	}
	dst.DrawBox(r, core.ColorBorderActive)
	cx, cy := r.Center()
	dst.SetCell(cx, cy, core.Cell{Rune: upper(ch), Fg: core.ColorLetter})
}

// drawFlipTile draws a submitted tile at flip progress p.
func drawFlipTile(dst *core.Screen, r core.Rect, ch byte, c Classification, p float64) {
	bg := core.ColorTileEmpty
	if showsBack(p) {
		bg = tileColor(c)
	}

	h := faceHeight(p, r.H)
	face := core.NewRect(r.X, r.Y+(r.H-h)/2, r.W, h)
	dst.FillRect(face, bg)

	if letterHidden(p) {
		return
	}
	cx, cy := r.Center()
	dst.SetCell(cx, cy, core.Cell{Rune: upper(ch), Fg: core.ColorLetter, Bg: bg})
}

func tileColor(c Classification) core.Color {
	switch c {
	case Exact:
		return core.ColorTileExact
	case Present:
		return core.ColorTilePresent
	case Absent:
		return core.ColorTileAbsent
	default:
		return core.ColorTileEmpty
	}
}

// drawKeyboard shows letter hints from fully revealed rows.
func (g *Game) drawKeyboard(dst *core.Screen, y0 int) {
	records := g.round.Records()
	if g.phase == PhaseSubmitted && len(records) > 0 {
		records = records[:len(records)-1]
	}
	hints := LetterHints(records)

	for i, row := range keyboardRows {
		width := len(row)*2 - 1
		x := (dst.Width() - width) / 2
		for j := 0; j < len(row); j++ {
			fg, bg := keyColors(hints[row[j]])
			dst.SetCell(x+j*2, y0+i, core.Cell{Rune: upper(row[j]), Fg: fg, Bg: bg})
		}
	}

	dst.DrawTextCentered(y0+len(keyboardRows), helpLine, core.ColorMuted)
}

func keyColors(h Hint) (fg, bg core.Color) {
	switch h {
	case HintExact:
		return core.ColorLetter, core.ColorTileExact
	case HintPresent:
		return core.ColorLetter, core.ColorTilePresent
	case HintAbsent:
		return core.ColorMuted, core.ColorDefault
	default:
		return core.ColorText, core.ColorDefault
	}
}

// drawPrompt overlays the play-again box on the lower part of the grid.
func (g *Game) drawPrompt(dst *core.Screen, gridX, gridY int) {
	box := core.NewRect(gridX, gridY+gridH-5, gridW, 5)
	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box, core.ColorPrompt)

	headline := "You lost"
	if g.round.Outcome() == Won {
		headline = "You won"
	}
	prompt := "Play again?  Y / N"
	if !g.Replayable() {
		prompt = "New word tomorrow  N"
	}
	drawCenteredIn(dst, box, box.Y+1, headline, core.ColorTitle)
	drawCenteredIn(dst, box, box.Y+3, prompt, core.ColorText)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Window too small", core.ColorTitle)
	dst.DrawTextCentered(cy+1, "Please resize your terminal", core.ColorMuted)
}

func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string, fg core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColor(x, y, text, fg, core.ColorDefault)
}

func upper(ch byte) rune {
	return []rune(strings.ToUpper(string(ch)))[0]
}
