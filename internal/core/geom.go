// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
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

// AABB is an axis-aligned bounding box in world coordinates.
// Games simulate in world units and only convert to cells when rendering.
type AABB struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewAABB creates a box with the given position and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b AABB) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Inset shrinks the box by d on every side.
func (b AABB) Inset(d float64) AABB {
	return AABB{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}

// Intersects reports strict overlap: touching edges do not collide.
func (b AABB) Intersects(o AABB) bool {
	return b.X < o.Right() &&
		b.Right() > o.X &&
		b.Y < o.Bottom() &&
		b.Bottom() > o.Y
}

// Contains returns true if the point lies inside the box (right/bottom exclusive).
func (b AABB) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Circle is a circle in world coordinates.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() AABB {
	return AABB{X: c.X - c.R, Y: c.Y - c.R, W: c.R * 2, H: c.R * 2}
}

// ClosestPoint returns the point of b nearest to (x, y).
func ClosestPoint(b AABB, x, y float64) (float64, float64) {
	return ClampF(x, b.X, b.Right()), ClampF(y, b.Y, b.Bottom())
}

// CircleIntersectsRect performs the closest-point test.
// A circle whose edge exactly touches the box counts as a hit.
func CircleIntersectsRect(c Circle, b AABB) bool {
	cx, cy := ClosestPoint(b, c.X, c.Y)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.R*c.R
}

// CircleIntersectsCircle reports overlap of two circles (touching is not overlap).
func CircleIntersectsCircle(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := a.R + b.R
	return dx*dx+dy*dy < rr*rr
}

// Edge identifies a side of a box.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Vertical reports whether the edge is horizontal in space, i.e. a hit on it
// reflects the vertical velocity component.
func (e Edge) Vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// NearestEdge returns the edge of b closest to (x, y).
// Ties prefer top/bottom over left/right.
func NearestEdge(b AABB, x, y float64) Edge {
	left := math.Abs(x - b.X)
	right := math.Abs(x - b.Right())
	top := math.Abs(y - b.Y)
	bottom := math.Abs(y - b.Bottom())

	m := math.Min(math.Min(left, right), math.Min(top, bottom))
	switch m {
	case top:
		return EdgeTop
	case bottom:
		return EdgeBottom
	case left:
		return EdgeLeft
	default:
		return EdgeRight
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

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
