package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// adjustVelocity adds dx to the horizontal component and restores the
// original speed.
func adjustVelocity(v core.Vec2, dx float64) core.Vec2 {
	mag := v.Len()
	v[0] += dx
	if v.Len() == 0 {
		return v
	}
	return v.Normalize().Mul(mag)
}

// clampAngle keeps v at least angle radians away from the horizontal.
// Vectors already steep enough are returned unchanged.
func clampAngle(v core.Vec2, angle float64) core.Vec2 {
	mag := v.Len()
	if mag == 0 {
		return v
	}
	cx, cy := math.Cos(angle), math.Sin(angle)
	if math.Abs(v.X()/mag) < cx {
		return v
	}
	return core.V(
		math.Copysign(cx, v.X())*mag,
		math.Copysign(cy, v.Y())*mag,
	)
}

// reflect points the velocity component on the struck axis away from the
// struck face.
func reflect(v core.Vec2, side core.Side) core.Vec2 {
	switch side {
	case core.North:
		v[1] = math.Abs(v.Y())
	case core.South:
		v[1] = -math.Abs(v.Y())
	case core.East:
		v[0] = math.Abs(v.X())
	case core.West:
		v[0] = -math.Abs(v.X())
	}
	return v
}
