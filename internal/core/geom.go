// Package core provides fundamental types and utilities shared by the
// simulation and the terminal shell. It has no external dependencies so the
// physics code built on it stays pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world units.
// X, Y is the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps reports whether two boxes intersect. Edges are inclusive:
// boxes that only touch still overlap, so two bodies resting flush against
// each other never slip through a float-equality gap.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b.X, b.Y, b.W, b.H, other.X, other.Y, other.W, other.H)
}

// Overlaps is the inclusive-edge AABB test on raw coordinates.
// Two rectangles overlap unless one's edge strictly precedes the other's
// opposite edge.
func Overlaps(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return !(x1+w1 < x2 ||
		x2+w2 < x1 ||
		y1+h1 < y2 ||
		y2+h2 < y1)
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// FloorDiv returns floor(v / unit) as an int. Used to map world units to
// tile or bucket coordinates, including negative positions.
func FloorDiv(v, unit float64) int {
	return int(math.Floor(v / unit))
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

// Clamp restricts an int to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
