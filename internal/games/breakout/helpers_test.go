package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
)

const frame = 1.0 / 60

// wideRow is one block in the top-left corner of a 20-column grid, which
// gives a 480x272 playfield with the paddle centered at x=240.
const wideRow = "#..................."

func testLevel(t *testing.T, name string, rows ...string) levels.Level {
	t.Helper()
	g, err := levels.ParseGrid(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("ParseGrid(%q): %v", rows, err)
	}
	return levels.Level{Name: name, Grid: g}
}

func testGame(t *testing.T, mode GameMode, pack ...levels.Level) *Game {
	t.Helper()
	if len(pack) == 0 {
		pack = []levels.Level{testLevel(t, "wide", wideRow)}
	}
	g, err := NewGame(Options{Mode: mode, Config: config.DefaultBreakoutConfig(), Levels: pack})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// startedGame returns a game that has left the title screen.
func startedGame(t *testing.T, mode GameMode, pack ...levels.Level) *Game {
	t.Helper()
	g := testGame(t, mode, pack...)
	g.HandleKey(core.Press(core.ActionOther))
	if g.Scene().Kind() != SceneLevel {
		t.Fatalf("expected level scene after a key press, got %v", g.Scene().Kind())
	}
	return g
}

// levelWithBalls builds a bare level and puts the given balls in play.
func levelWithBalls(t *testing.T, cfg config.BreakoutConfig, balls ...Ball) *LevelState {
	t.Helper()
	l := NewLevelState(testLevel(t, "wide", wideRow), cfg)
	l.Balls = append(l.Balls, balls...)
	if len(balls) > 0 {
		l.Launching = false
	}
	return l
}

func ball(x, y, vx, vy float64) Ball {
	return Ball{Circle: core.NewCircle(core.V(x, y), 8), Velocity: core.V(vx, vy)}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearVec(a, b core.Vec2) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y())
}
