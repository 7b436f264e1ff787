// Package breakout implements a float-physics brick breaker: swept
// circle-vs-rectangle collisions against destructible blocks, walls and a
// moving paddle, with a spring-damper screen shake on every impact.
//
// World space has its origin at the bottom-left of the playfield and y
// pointing up.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
)

// Ball is a moving circle.
type Ball struct {
	Circle   core.Circle
	Velocity core.Vec2
}

// Paddle is the player-driven rectangle. Bias is the smoothed horizontal
// velocity; it moves the paddle and spins the balls it deflects.
type Paddle struct {
	Rect core.Rect
	Bias float64
}

// Block is a destructible rectangle.
type Block struct {
	Rect core.Rect
	Hits int
}

// LevelState is the complete simulation state of one level.
//
// Blocks[:AliveCount] are alive and Blocks[AliveCount:] are destroyed.
// The slice is never reallocated while the level is played.
type LevelState struct {
	Name string
	W, H float64

	ShakeP core.Vec2
	ShakeV core.Vec2

	Delay     float64 // bounce cooldown in seconds
	TimeScale float64

	Paddle    Paddle
	BallProto Ball
	Balls     []Ball

	Blocks     []Block
	AliveCount int

	Launching bool

	cfg        config.BreakoutConfig
	boundaries [3]core.Rect
}

// NewLevelState lays out a parsed grid in world space.
func NewLevelState(lvl levels.Level, cfg config.BreakoutConfig) *LevelState {
	lay := cfg.Layout
	g := lvl.Grid

	blocks := make([]Block, 0, g.BlockCount())
	for _, c := range g.Blocks() {
		x := float64(c.Col) * lay.BlockWidth
		y := float64(g.Height-c.Row-1)*lay.BlockHeight + lay.BlocksBottom
		blocks = append(blocks, Block{Rect: core.NewRect(x, y, lay.BlockWidth, lay.BlockHeight)})
	}

	w := float64(g.Width) * lay.BlockWidth
	h := float64(g.Height)*lay.BlockHeight + lay.BlocksBottom

	l := &LevelState{
		Name:      lvl.Name,
		W:         w,
		H:         h,
		TimeScale: cfg.Physics.TimeScale,
		Paddle: Paddle{
			Rect: core.NewRect(w/2-cfg.Paddle.Width/2, cfg.Paddle.Bottom, cfg.Paddle.Width, cfg.Paddle.Height),
		},
		BallProto: Ball{
			Circle:   core.NewCircle(core.Vec2{}, cfg.Ball.Radius),
			Velocity: core.V(0, cfg.Ball.Speed),
		},
		Balls:      make([]Ball, 0, 4),
		Blocks:     blocks,
		AliveCount: len(blocks),
		Launching:  true,
		cfg:        cfg,
	}

	t := lay.WallThickness
	l.boundaries = [3]core.Rect{
		core.NewRect(-t, 0, t, h),     // left
		core.NewRect(w, 0, t, h),      // right
		core.NewRect(-t, h, w+2*t, t), // ceiling
	}
	return l
}

// Bounds returns the playfield rectangle.
func (l *LevelState) Bounds() core.Rect {
	return core.NewRect(0, 0, l.W, l.H)
}

// Boundaries returns the out-of-bounds sentinels around the playfield:
// left wall, right wall and ceiling.
func (l *LevelState) Boundaries() [3]core.Rect {
	return l.boundaries
}

// AliveBlocks returns the alive prefix of the block slice.
func (l *LevelState) AliveBlocks() []Block {
	return l.Blocks[:l.AliveCount]
}

// Cleared reports whether every block has been destroyed.
func (l *LevelState) Cleared() bool {
	return l.AliveCount == 0
}

// destroyBlock moves block i into the dead suffix. The last alive block
// takes its slot, so survivor order changes.
func (l *LevelState) destroyBlock(i int) {
	l.Blocks[i].Hits++
	l.AliveCount--
	l.Blocks[i], l.Blocks[l.AliveCount] = l.Blocks[l.AliveCount], l.Blocks[i]
}

// LaunchPosition is where a new ball appears: centered on top of the paddle.
func (l *LevelState) LaunchPosition() core.Vec2 {
	p := l.Paddle.Rect
	return core.V(p.Center().X(), p.Top()+l.BallProto.Circle.Radius)
}

// Launch spawns a ball from the prototype if the level is waiting for one.
// The launch direction gets the same spin and angle clamp as a paddle bounce.
func (l *LevelState) Launch() bool {
	if !l.Launching {
		return false
	}
	l.Launching = false

	v := adjustVelocity(l.BallProto.Velocity, l.Paddle.Bias*l.cfg.Paddle.SpinFactor)
	v = clampAngle(v, l.cfg.Physics.AngleClamp)
	l.Balls = append(l.Balls, Ball{
		Circle:   core.NewCircle(l.LaunchPosition(), l.BallProto.Circle.Radius),
		Velocity: v,
	})
	return true
}
