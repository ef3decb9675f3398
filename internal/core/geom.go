// Package core provides fundamental types and utilities for the road game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or offset in world units. Y grows upwards.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned world-space box described by its center and half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box centered on c with the given full width and height.
func NewBox(c Vec2, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// Intersects returns true if the two boxes overlap.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	dx := b.Center.X - other.Center.X
	dy := b.Center.Y - other.Center.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < b.HalfW+other.HalfW && dy < b.HalfH+other.HalfH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
