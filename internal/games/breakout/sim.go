package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Input is the held-key state fed into a frame.
type Input struct {
	Left, Right bool
}

// Report summarizes what happened during one Advance call.
type Report struct {
	Points    int  // score earned this frame
	BlocksHit int  // blocks destroyed this frame
	Bounces   int  // collisions resolved, paddle included
	BallLost  bool // the last active ball left the playfield
	Truncated bool // a ball hit the substep cap with time remaining
}

// hitKind tells what a ball struck.
type hitKind int

const (
	hitNone hitKind = iota
	hitBlock
	hitBoundary
)

type hit struct {
	kind  hitKind
	t     float64
	side  core.Side
	block int
}

// Advance runs one frame of dt seconds.
func (l *LevelState) Advance(dt float64, in Input) Report {
	var rep Report

	dt *= l.TimeScale
	dt -= l.cooldown(dt)

	l.integrateShake(dt)
	l.updatePaddle(dt, in)

	for i := range l.Balls {
		l.advanceBall(&l.Balls[i], dt, &rep)
	}

	l.cullBalls(&rep)
	return rep
}

// cooldown consumes up to dt of the bounce delay and returns the amount
// consumed.
func (l *LevelState) cooldown(dt float64) float64 {
	reduce := min(dt, l.Delay)
	l.Delay -= reduce
	return reduce
}

func (l *LevelState) integrateShake(dt float64) {
	s := l.cfg.Shake
	l.ShakeP = l.ShakeP.Add(l.ShakeV.Mul(dt))
	l.ShakeV = l.ShakeV.Mul(1 - s.Damping).Add(l.ShakeP.Mul(-s.Stiffness))
}

func (l *LevelState) updatePaddle(dt float64, in Input) {
	pc := l.cfg.Paddle
	p := &l.Paddle

	var ddx float64
	if in.Left {
		ddx -= pc.Acceleration
	}
	if in.Right {
		ddx += pc.Acceleration
	}
	p.Bias = (p.Bias + ddx) * pc.Damping
	maxX := l.W - p.Rect.W
	x := p.Rect.Origin.X() + p.Bias*dt
	p.Rect.Origin[0] = core.ClampF(x, 0, maxX)

	// Pushing into a wall kills the matching bias.
	if x < 0 && p.Bias < 0 || x > maxX && p.Bias > 0 {
		p.Bias = 0
	}
}

// advanceBall sub-steps a single ball through the frame. Block and wall
// hits keep the full remaining time for the next sweep; a paddle hit
// consumes t of it.
func (l *LevelState) advanceBall(b *Ball, dt float64, rep *Report) {
	phys := l.cfg.Physics
	rem := dt - l.cooldown(dt)

	for steps := 0; rem > 0; steps++ {
		if steps == phys.MaxSubsteps {
			rep.Truncated = true
			return
		}
		dcp := b.Velocity.Mul(rem)

		if h := l.earliestHit(b.Circle, dcp); h.kind != hitNone {
			b.Circle.Center = b.Circle.Center.Add(dcp.Mul(h.t))
			before := b.Velocity
			b.Velocity = reflect(b.Velocity, h.side)
			l.impulse(before.Sub(b.Velocity))
			rep.Bounces++

			if h.kind == hitBlock {
				l.destroyBlock(h.block)
				rep.BlocksHit++
				rep.Points += l.cfg.Gameplay.BlockPoints
			}
			continue
		}

		if t, side, ok := core.SweptCircleRect(b.Circle, l.Paddle.Rect, dcp); ok && side == core.North {
			b.Circle.Center = b.Circle.Center.Add(dcp.Mul(t))
			before := b.Velocity
			v := b.Velocity
			v[1] = math.Abs(v.Y())
			v = adjustVelocity(v, l.Paddle.Bias*l.cfg.Paddle.SpinFactor)
			v = clampAngle(v, phys.AngleClamp)
			rem -= t
			l.impulse(before.Sub(v))
			b.Velocity = v.Mul(phys.BounceSpeedScale)
			rep.Bounces++
			continue
		}

		b.Circle.Center = b.Circle.Center.Add(dcp)
		rem = 0
	}
}

// earliestHit sweeps the ball against alive blocks then the boundaries.
// Ties keep the first candidate seen.
func (l *LevelState) earliestHit(c core.Circle, dcp core.Vec2) hit {
	best := hit{kind: hitNone}
	consider := func(kind hitKind, r core.Rect, block int) {
		t, side, ok := core.SweptCircleRect(c, r, dcp)
		if !ok {
			return
		}
		if best.kind == hitNone || t < best.t {
			best = hit{kind: kind, t: t, side: side, block: block}
		}
	}

	for i := range l.AliveCount {
		consider(hitBlock, l.Blocks[i].Rect, i)
	}
	for _, r := range l.Boundaries() {
		consider(hitBoundary, r, -1)
	}
	return best
}

// impulse transfers a velocity change into the screen shake and arms
// the bounce cooldown.
func (l *LevelState) impulse(dv core.Vec2) {
	s := l.cfg.Shake
	l.ShakeV = l.ShakeV.Add(dv.Mul(s.BallMass / s.LevelMass))
	l.Delay = l.cfg.Physics.BounceDelay
}

// cullBalls drops balls that fell through the bottom of the playfield.
// The margin below the ball lets it visibly leave before it is removed.
func (l *LevelState) cullBalls(rep *Report) {
	bounds := l.Bounds()
	margin := l.cfg.Ball.CullMargin

	kept := l.Balls[:0]
	for _, b := range l.Balls {
		bottom := b.Circle.Center.Add(core.V(0, -b.Circle.Radius-margin))
		if core.PointInRect(bounds, bottom) {
			kept = append(kept, b)
		}
	}
	clear(l.Balls[len(kept):])
	l.Balls = kept

	if len(l.Balls) == 0 && !l.Launching {
		l.Launching = true
		rep.BallLost = true
	}
}
