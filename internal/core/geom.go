// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// World dimensions shared by all games. Games simulate in a fixed-size
// world with the y axis pointing up; the viewport maps it onto the
// terminal cell grid.
const (
	WorldW = 800.0
	WorldH = 600.0
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector's length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns a unit-length vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect is an axis-aligned box described by its center and full size,
// used for collision detection.
type Rect struct {
	Pos  Vec2 // Center position
	Size Vec2 // Full width and height
}

// NewRect creates a rectangle centered at (x, y) with the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Pos.X - r.Size.X/2
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X/2
}

// Top returns the y-coordinate of the top edge (y-up world).
func (r Rect) Top() float64 {
	return r.Pos.Y + r.Size.Y/2
}

// Bottom returns the y-coordinate of the bottom edge (y-up world).
func (r Rect) Bottom() float64 {
	return r.Pos.Y - r.Size.Y/2
}

// Contains returns true if the point lies inside this rectangle.
// Edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Intersects returns true if this rectangle overlaps with another.
// Uses the half-extent overlap test; touching edges count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Right() < o.Left() || r.Left() > o.Right() ||
		r.Top() < o.Bottom() || r.Bottom() > o.Top())
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
