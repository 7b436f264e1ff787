package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the pack once, then finish
	ModeEndless                  // Wrap to the first level after the last
)

// ErrNoLevels is returned when a game is built without any level.
var ErrNoLevels = errors.New("breakout: no levels")

// settings stores the CLI overrides applied to every new game.
var settings struct {
	configPath string
	preset     config.DifficultyPreset
	levelsDir  string
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settings.configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	settings.preset = preset
}

// SetLevelsDir sets a directory of level files to play instead of the
// built-in levels.
func SetLevelsDir(dir string) {
	settings.levelsDir = dir
}

// Options configures a Game.
type Options struct {
	Mode   GameMode
	Config config.BreakoutConfig
	Levels levels.Pack
}

// LoadOptions resolves the package settings into game options. Every
// level file is read and validated here, so a broken pack fails before
// the game starts.
func LoadOptions(mode GameMode) (Options, error) {
	cfg, err := config.LoadBreakout(settings.configPath)
	if err != nil {
		return Options{}, err
	}
	if settings.preset != "" {
		config.ApplyBreakoutPreset(&cfg, settings.preset)
	}

	var pack levels.Pack
	if settings.levelsDir != "" {
		pack, err = levels.LoadDir(settings.levelsDir)
	} else {
		pack, err = levels.Builtin()
	}
	if err != nil {
		return Options{}, err
	}
	return Options{Mode: mode, Config: cfg, Levels: pack}, nil
}

// Game implements the breakout state machine: Start, Level(N), Finish.
type Game struct {
	mode GameMode
	cfg  config.BreakoutConfig
	pack levels.Pack

	runtime core.RuntimeConfig

	score      int
	ballsLeft  int
	levelIndex int
	cycle      int // completed passes through the pack (endless mode)

	leftHeld  bool
	rightHeld bool
	paused    bool

	scene Scene

	frames          uint64
	truncatedFrames int
}

// NewGame creates a game from explicit options.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	g := &Game{mode: opts.Mode, cfg: opts.Config, pack: opts.Levels}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return modeID(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return modeTitle(g.mode)
}

func modeID(m GameMode) string {
	if m == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

func modeTitle(m GameMode) string {
	if m == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset returns to the title screen and forgets all progress.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.score = 0
	g.ballsLeft = 0
	g.levelIndex = 0
	g.cycle = 0
	g.leftHeld = false
	g.rightHeld = false
	g.paused = false
	g.frames = 0
	g.truncatedFrames = 0
	g.scene = StartScene{}
}

// HandleKey delivers a key transition. Directional state is tracked in
// every scene.
func (g *Game) HandleKey(ev core.KeyEvent) {
	switch ev.Action {
	case core.ActionLeft:
		g.leftHeld = ev.Pressed
	case core.ActionRight:
		g.rightHeld = ev.Pressed
	}
	if next := g.scene.onKey(g, ev); next != nil {
		g.scene = next
	}
}

// HandleMouse accepts pointer events. They have no effect.
func (g *Game) HandleMouse(core.MouseEvent) {}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64) core.StepResult {
	g.frames++
	if next := g.scene.step(g, dt); next != nil {
		g.scene = next
	}
	return core.StepResult{State: g.State()}
}

// newRun starts a fresh run at the first level.
func (g *Game) newRun() Scene {
	g.score = 0
	g.ballsLeft = g.cfg.Gameplay.Lives
	g.levelIndex = 0
	g.cycle = 0
	g.paused = false
	return g.loadLevel(0)
}

// nextLevel returns the scene that follows a cleared level.
func (g *Game) nextLevel() Scene {
	g.levelIndex++
	if g.levelIndex >= len(g.pack) {
		if g.mode != ModeEndless {
			return &FinishScene{}
		}
		g.levelIndex = 0
		g.cycle++
	}
	return g.loadLevel(g.levelIndex)
}

func (g *Game) loadLevel(i int) Scene {
	return &LevelScene{State: NewLevelState(g.pack[i], g.cfg)}
}

// Scene returns the active scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// BallsLeft returns the remaining lives.
func (g *Game) BallsLeft() int {
	return g.ballsLeft
}

// LevelNumber returns the 1-based number of the current level, counting
// every pass in endless mode.
func (g *Game) LevelNumber() int {
	if g.scene.Kind() != SceneLevel {
		return 0
	}
	return g.cycle*len(g.pack) + g.levelIndex + 1
}

// Levels returns the level pack.
func (g *Game) Levels() levels.Pack {
	return g.pack
}

// Config returns the active configuration.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.ballsLeft,
		Level:    g.LevelNumber(),
		Scene:    g.scene.Kind().String(),
		GameOver: g.scene.Kind() == SceneFinish,
		Paused:   g.paused,
	}
}

// Describe summarizes the game for logs.
func (g *Game) Describe() string {
	return fmt.Sprintf("%s: %d levels, %d lives, time scale %.2f",
		g.ID(), len(g.pack), g.cfg.Gameplay.Lives, g.cfg.Physics.TimeScale)
}

// Register the games with the registry
func init() {
	for _, mode := range []GameMode{ModeCampaign, ModeEndless} {
		registry.Register(registry.GameInfo{ID: modeID(mode), Title: modeTitle(mode)}, func() (registry.Game, error) {
			opts, err := LoadOptions(mode)
			if err != nil {
				return nil, err
			}
			g, err := NewGame(opts)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}
