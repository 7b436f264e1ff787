package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// gameFlags are the flags shared by commands that create games.
type gameFlags struct {
	config     string
	difficulty string
	levels     string
	endless    bool
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to custom breakout config YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&f.levels, "levels", "", "Directory of .level files (default: built-in levels)")
	cmd.Flags().BoolVar(&f.endless, "endless", false, "Loop the level pack instead of finishing")
}

// apply hands the flags to the breakout package and returns the game ID.
// The config and the level pack are loaded here so that mistakes are
// reported before the terminal is taken over.
func (f *gameFlags) apply() (string, error) {
	preset, err := config.ParsePreset(f.difficulty)
	if err != nil {
		return "", err
	}
	breakout.SetConfigPath(f.config)
	breakout.SetDifficultyPreset(preset)
	breakout.SetLevelsDir(f.levels)

	mode := breakout.ModeCampaign
	id := "breakout"
	if f.endless {
		mode = breakout.ModeEndless
		id = "breakout_endless"
	}
	if _, err := breakout.LoadOptions(mode); err != nil {
		return "", err
	}
	return id, nil
}
