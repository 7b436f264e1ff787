package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot is a read-only copy of everything a renderer or a test needs.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Frame uint64
	Mode  GameMode
	Scene SceneKind

	Score      int
	BallsLeft  int
	Level      int // 1-based, counting endless passes
	LevelCount int
	LevelName  string
	Paused     bool

	// Level geometry; zero outside a level.
	W, H       float64
	BlockW     float64
	BlockH     float64
	Shake      core.Vec2
	Paddle     core.Rect
	PaddleBias float64
	Balls      []Ball
	Blocks     []Block // alive blocks
	TotalCount int     // alive and destroyed blocks
	Launching  bool
	Preview    core.Circle // ball waiting on the paddle, valid while Launching

	TruncatedFrames int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:           g.frames,
		Mode:            g.mode,
		Scene:           g.scene.Kind(),
		Score:           g.score,
		BallsLeft:       g.ballsLeft,
		Level:           g.LevelNumber(),
		LevelCount:      len(g.pack),
		Paused:          g.paused,
		BlockW:          g.cfg.Layout.BlockWidth,
		BlockH:          g.cfg.Layout.BlockHeight,
		TruncatedFrames: g.truncatedFrames,
	}

	l := g.scene.Level()
	if l == nil {
		return snap
	}
	snap.LevelName = l.Name
	snap.W, snap.H = l.W, l.H
	snap.Shake = l.ShakeP
	snap.Paddle = l.Paddle.Rect
	snap.PaddleBias = l.Paddle.Bias
	snap.Balls = append([]Ball(nil), l.Balls...)
	snap.Blocks = append([]Block(nil), l.AliveBlocks()...)
	snap.TotalCount = len(l.Blocks)
	snap.Launching = l.Launching
	if l.Launching {
		snap.Preview = core.NewCircle(l.LaunchPosition(), l.BallProto.Circle.Radius)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats contribute their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixV := func(v core.Vec2) {
		mixF(v.X())
		mixF(v.Y())
	}
	mixR := func(r core.Rect) {
		mixV(r.Origin)
		mixF(r.W)
		mixF(r.H)
	}
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(uint64(snap.Mode))      //#nosec G115 -- hash computation
	mix(uint64(snap.Scene))     //#nosec G115 -- hash computation
	mix(uint64(snap.Score))     //#nosec G115 -- hash computation
	mix(uint64(snap.BallsLeft)) //#nosec G115 -- hash computation
	mix(uint64(snap.Level))     //#nosec G115 -- hash computation
	mixB(snap.Paused)
	mixB(snap.Launching)
	mixF(snap.W)
	mixF(snap.H)
	mixV(snap.Shake)
	mixR(snap.Paddle)
	mixF(snap.PaddleBias)

	for _, b := range snap.Balls {
		mixV(b.Circle.Center)
		mixF(b.Circle.Radius)
		mixV(b.Velocity)
	}
	for _, b := range snap.Blocks {
		mixR(b.Rect)
		mix(uint64(b.Hits)) //#nosec G115 -- hash computation
	}
	mix(uint64(snap.TotalCount)) //#nosec G115 -- hash computation

	return h
}
