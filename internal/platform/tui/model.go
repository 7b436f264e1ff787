package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	hold      *holdTracker
	clock     *frameClock
	gameState core.GameState
	player    string
	logger    *log.Logger

	lastLevel  int // highest level seen during the current run
	quitting   bool
	scoreSaved bool // whether the score has been saved for the current finish
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case scores are not saved.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   newHoldTracker(),
		clock:  &frameClock{},
		player: player,
		logger: logger.WithPrefix(game.ID()),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config seen by the game, minus the footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to game transitions.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		for _, ev := range m.hold.releaseAll() {
			m.game.HandleKey(ev)
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		for _, ev := range m.hold.press(action, now) {
			m.game.HandleKey(ev)
		}
	case core.ActionNone:
	default:
		m.game.HandleKey(core.Press(action))
		m.game.HandleKey(core.Release(action))
	}

	m.observe(m.game.State())
	return m, nil
}

// handleTick releases expired keys and advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, ev := range m.hold.expire(now) {
		m.game.HandleKey(ev)
	}

	result := m.game.Step(m.clock.delta(now, m.config.TickRate))
	m.observe(result.State)

	return m, tickCmd(m.config.TickRate)
}

// observe records a new game state, logging scene changes and saving the
// score once per finished run.
func (m *Model) observe(state core.GameState) {
	prev := m.gameState
	m.gameState = state

	if state.Scene != prev.Scene {
		m.logger.Debug("scene changed", "from", prev.Scene, "to", state.Scene,
			"score", state.Score, "level", state.Level)
	}
	if state.Level > m.lastLevel {
		m.lastLevel = state.Level
	}

	if !state.GameOver {
		if prev.GameOver {
			m.scoreSaved = false
			m.lastLevel = 0
		}
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.saveScore(state)
}

func (m *Model) saveScore(state core.GameState) {
	if m.store == nil || state.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  state.Score,
		Level:  m.lastLevel,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "player", m.player, "score", state.Score, "level", m.lastLevel)
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	m.game.Render(m.screen)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last game state observed by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
