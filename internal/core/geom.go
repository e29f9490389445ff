// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Inflate grows (or shrinks, for negative values) the rectangle around its center.
func (r Rect) Inflate(dw, dh int) Rect {
	return Rect{
		X: r.X - dw/2,
		Y: r.Y - dh/2,
		W: r.W + dw,
		H: r.H + dh,
	}
}

// WithCenter returns a copy of the rectangle moved so its center is at (cx, cy).
func (r Rect) WithCenter(cx, cy int) Rect {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
	return r
}

// Vec is a 2D vector with float components, used for directions and positions
// that accumulate fractional movement.
type Vec struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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

// FloorDiv divides rounding toward negative infinity, so world coordinates
// left of or above the origin map to the correct screen cell.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
