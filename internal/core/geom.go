// Package core provides fundamental types and utilities for the breakout
// platform: vector geometry, the swept collision solver, the character screen
// buffer and input actions. Apart from mathgl vectors it has no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Epsilon is the parametric tolerance used by the collision solver.
// Hits closer than Epsilon to either end of a segment are ignored.
const Epsilon = 1e-4

// Circle is a circle in world space.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle creates a circle centered at c.
func NewCircle(c Vec2, r float64) Circle {
	return Circle{Center: c, Radius: r}
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	Origin Vec2
	W, H   float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: V(x, y), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Origin.X() + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Origin.Y() + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return V(r.Origin.X()+r.W/2, r.Origin.Y()+r.H/2)
}

// Inflate grows the rectangle by d on all four sides.
func (r Rect) Inflate(d float64) Rect {
	return Rect{Origin: r.Origin.Sub(V(d, d)), W: r.W + 2*d, H: r.H + 2*d}
}

// Segment is a directed line segment.
type Segment struct {
	From, To Vec2
}

// Side identifies a face of a rectangle.
type Side int

const (
	North Side = iota // top edge, y = Origin.Y + H
	East              // right edge, x = Origin.X + W
	South             // bottom edge, y = Origin.Y
	West              // left edge, x = Origin.X
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Edge returns the segment of r along side s.
func (r Rect) Edge(s Side) Segment {
	p := r.Origin
	switch s {
	case North:
		return Segment{From: p.Add(V(0, r.H)), To: p.Add(V(r.W, r.H))}
	case East:
		return Segment{From: p.Add(V(r.W, 0)), To: p.Add(V(r.W, r.H))}
	case South:
		return Segment{From: p, To: p.Add(V(r.W, 0))}
	default:
		return Segment{From: p, To: p.Add(V(0, r.H))}
	}
}

// PointInRect reports whether p lies inside r.
// The low x edge and both high edges are exclusive; the low y edge is
// inclusive. Points within Epsilon of the low x edge count as outside so a
// ball resting exactly on a boundary is not classified as colliding forever.
func PointInRect(r Rect, p Vec2) bool {
	d := p.Sub(r.Origin)
	return Epsilon < d.X() && d.X() < r.W && Epsilon <= d.Y() && d.Y() < r.H
}

// PointInCircle reports whether p lies inside or on c.
func PointInCircle(c Circle, p Vec2) bool {
	return p.Sub(c.Center).Len() <= c.Radius
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
