// Package core provides the shared types of the climber: actions and input
// frames, the screen buffer, colors, geometry and the frame clock.
// It has no UI dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned cell rectangle used for layout and overlays.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
