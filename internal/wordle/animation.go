package wordle

import (
	"math"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Reveal is the staggered flip of one submitted row. Tile i starts flipping
// Stagger ticks after tile i-1 and takes Flip ticks.
type Reveal struct {
	Row     int    // Grid row being revealed
	Start   uint64 // Tick of submission
	Flip    int    // Ticks per tile flip
	Stagger int    // Ticks between tile starts
}

// Progress returns 0..1 for the tile in col at the given tick.
func (r *Reveal) Progress(col int, tick uint64) float64 {
	start := r.Start + uint64(col*r.Stagger)
	if tick <= start {
		return 0
	}
	if r.Flip <= 0 {
		return 1
	}
	return core.ClampF(float64(tick-start)/float64(r.Flip), 0, 1)
}

// Done reports whether the last tile has finished flipping.
func (r *Reveal) Done(tick uint64) bool {
	return tick >= r.Start+uint64((WordLen-1)*r.Stagger+r.Flip)
}

// faceHeight returns the visible height of a flipping tile: full, shrinking
// to one row edge-on at the midpoint, then full again.
func faceHeight(p float64, full int) int {
	if p <= 0 || p >= 1 {
		return full
	}
	h := int(math.Round(math.Abs(1-2*p) * float64(full)))
	return core.Clamp(h, 1, full)
}

// showsBack reports whether the colored side of the tile is facing the viewer.
func showsBack(p float64) bool {
	return p >= 0.5
}

// letterHidden reports whether the letter is hidden during the first half of the flip.
func letterHidden(p float64) bool {
	return p > 0 && p < 0.5
}
