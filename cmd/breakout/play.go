package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levels"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	playFlags  gameFlags
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start playing breakout in the terminal.

Controls:
  ←/A/H, →/D/L  - Move the paddle
  Space         - Launch a ball
  P             - Pause
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy    - More lives, slower time, gentler speed ramp, wider paddle
  normal  - The default config
  hard    - Fewer lives, faster time, steeper speed ramp, narrower paddle

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --endless
  breakout play --config ./my-breakout.yaml --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with high scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID, err := playFlags.apply()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if d, ok := game.(interface{ Describe() string }); ok {
		logger.Info("starting game", "game", d.Describe())
	}
	if lp, ok := game.(interface{ Levels() levels.Pack }); ok {
		logger.Debug("level pack", "levels", lp.Levels().Names())
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	return tui.Run(game, store, cfg, flagPlayer, logger)
}
