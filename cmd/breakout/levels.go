package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/levels"
)

var flagShowGrid bool

var levelsCmd = &cobra.Command{
	Use:   "levels [dir|file]",
	Short: "Validate and describe a level pack",
	Long: `Load every .level file of a directory (or the built-in pack when no
directory is given), report any file that fails to parse, and print the
size and block count of each level. A path ending in .level checks that
single file.

A level file is a text grid: '#' is a block, any other character is empty.
Short rows are padded, so the widest row sets the level width.

Examples:
  breakout levels
  breakout levels ./my-levels --show
  breakout levels ./my-levels/01-wall.level`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowGrid, "show", false, "Print each level's grid")
}

func runLevels(cmd *cobra.Command, args []string) error {
	var (
		pack levels.Pack
		err  error
	)
	switch {
	case len(args) == 1 && filepath.Ext(args[0]) == levels.Ext:
		var lvl levels.Level
		lvl, err = levels.LoadFile(args[0])
		pack = levels.Pack{lvl}
	case len(args) == 1:
		pack, err = levels.LoadDir(args[0])
	default:
		pack, err = levels.Builtin()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	maxNameLen := 4 // "Name" header
	for _, l := range pack {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %s\n", "#", maxNameLen, "Name", "Size", "Blocks")
	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %s\n", "-", maxNameLen, "----", "----", "------")
	for i, l := range pack {
		size := fmt.Sprintf("%dx%d", l.Grid.Width, l.Grid.Height)
		fmt.Fprintf(out, "  %-3d  %-*s  %-7s  %d\n", i+1, maxNameLen, l.Name, size, l.Grid.BlockCount())
		if flagShowGrid {
			fmt.Fprintln(out)
			fmt.Fprintln(out, l.Grid.String())
			fmt.Fprintln(out)
		}
	}
	fmt.Fprintf(out, "\nPlay order: %s\n", strings.Join(pack.Names(), ", "))
	return nil
}
