// Package core provides the platform types shared by the game and the
// terminal front-end: cell and pixel rectangles, the screen buffer, colors
// and abstract input. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

import "cmp"

// Rect is an axis-aligned cell rectangle on the terminal screen.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Intersects reports whether the two rectangles share a cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned rectangle in board pixels.
// The simulation works in float64 pixels; the terminal only sees cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports strict overlap; touching edges do not count.
func (b Box) Intersects(other Box) bool {
	return b.Bottom() > other.Y &&
		b.Y < other.Bottom() &&
		b.Right() > other.X &&
		b.X < other.Right()
}

// Clamp restricts v to [lo, hi]. When lo > hi the result is lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
