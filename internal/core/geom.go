// Package core provides the terminal-agnostic types shared by the game and
// the platform layer: cell screens, input frames and runtime config. It has
// no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned block of cells, such as a tile or a prompt box.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle at (x, y) of the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the cell a single glyph is centered on.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}
