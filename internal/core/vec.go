package core

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a 2D vector in world units. The world y axis points up.
type Vec2 = mgl64.Vec2

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}
