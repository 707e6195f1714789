// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Games in this module work in integer pixel space; Y grows downwards.
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

// CenterX returns the horizontal center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// SetCenterX moves the rectangle so its horizontal center is cx.
func (r *Rect) SetCenterX(cx int) {
	r.X = cx - r.W/2
}

// SetCenter moves the rectangle so its center is (cx, cy).
func (r *Rect) SetCenter(cx, cy int) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// SetMidBottom moves the rectangle so the middle of its bottom edge is (cx, bottom).
func (r *Rect) SetMidBottom(cx, bottom int) {
	r.X = cx - r.W/2
	r.Y = bottom - r.H
}

// SetMidTop moves the rectangle so the middle of its top edge is (cx, top).
func (r *Rect) SetMidTop(cx, top int) {
	r.X = cx - r.W/2
	r.Y = top
}

// SetBottomLeft anchors the bottom-left corner at (left, bottom).
func (r *Rect) SetBottomLeft(left, bottom int) {
	r.X = left
	r.Y = bottom - r.H
}

// SetBottomRight anchors the bottom-right corner at (right, bottom).
func (r *Rect) SetBottomRight(right, bottom int) {
	r.X = right - r.W
	r.Y = bottom - r.H
}

// ClampInto moves r the minimum distance needed to lie inside bounds.
// A rectangle wider or taller than bounds is aligned to the bounds' origin.
func (r *Rect) ClampInto(bounds Rect) {
	if r.W >= bounds.W {
		r.X = bounds.X
	} else {
		r.X = Clamp(r.X, bounds.X, bounds.Right()-r.W)
	}
	if r.H >= bounds.H {
		r.Y = bounds.Y
	} else {
		r.Y = Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
