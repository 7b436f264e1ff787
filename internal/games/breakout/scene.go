package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// SceneKind identifies the active scene.
type SceneKind int

const (
	SceneStart SceneKind = iota
	SceneLevel
	SceneFinish
)

// String returns the scene name.
func (k SceneKind) String() string {
	switch k {
	case SceneStart:
		return "start"
	case SceneLevel:
		return "level"
	case SceneFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// finishGrace is how long the finish screen ignores key presses, so a key
// held at the moment the game ends does not skip it.
const finishGrace = 0.5

// Scene is the current phase of the game. Exactly one scene is active;
// the set of scenes is closed to this package.
//
// onKey and step return the scene to switch to, or nil to stay.
type Scene interface {
	Kind() SceneKind
	Level() *LevelState
	onKey(g *Game, ev core.KeyEvent) Scene
	step(g *Game, dt float64) Scene
}

// StartScene is the title screen.
type StartScene struct{}

func (StartScene) Kind() SceneKind    { return SceneStart }
func (StartScene) Level() *LevelState { return nil }

func (StartScene) onKey(g *Game, ev core.KeyEvent) Scene {
	if !ev.Pressed {
		return nil
	}
	return g.newRun()
}

func (StartScene) step(*Game, float64) Scene { return nil }

// LevelScene owns the level being played.
type LevelScene struct {
	State *LevelState
}

func (s *LevelScene) Kind() SceneKind    { return SceneLevel }
func (s *LevelScene) Level() *LevelState { return s.State }

func (s *LevelScene) onKey(g *Game, ev core.KeyEvent) Scene {
	if !ev.Pressed {
		return nil
	}
	switch ev.Action {
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionLaunch:
		if !g.paused && g.ballsLeft > 0 {
			s.State.Launch()
		}
	}
	return nil
}

// step checks completion against the previous frame, then advances the
// level. The transition is applied by the caller after the frame.
func (s *LevelScene) step(g *Game, dt float64) Scene {
	if g.paused {
		return nil
	}

	var next Scene
	switch {
	case s.State.Cleared():
		next = g.nextLevel()
	case g.ballsLeft == 0:
		next = &FinishScene{}
	}

	rep := s.State.Advance(dt, Input{Left: g.leftHeld, Right: g.rightHeld})
	g.score += rep.Points
	if rep.BallLost && g.ballsLeft > 0 {
		g.ballsLeft--
	}
	if rep.Truncated {
		g.truncatedFrames++
	}
	return next
}

// FinishScene shows the final score.
type FinishScene struct {
	Elapsed float64
}

func (s *FinishScene) Kind() SceneKind    { return SceneFinish }
func (s *FinishScene) Level() *LevelState { return nil }

func (s *FinishScene) onKey(_ *Game, ev core.KeyEvent) Scene {
	if !ev.Pressed || s.Elapsed < finishGrace {
		return nil
	}
	return StartScene{}
}

func (s *FinishScene) step(_ *Game, dt float64) Scene {
	s.Elapsed += dt
	return nil
}
