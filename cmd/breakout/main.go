// breakout is a swept-collision brick breaker for the terminal.
//
// Usage:
//
//	breakout play            - Play the campaign
//	breakout play --endless  - Play the level pack in a loop
//	breakout list            - List game modes
//	breakout levels [dir]    - Validate a level pack
//	breakout scores [mode]   - Show high scores
//	breakout serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.breakout/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - a swept-collision brick breaker for your terminal",
	Long: `Breakout is a brick breaker played in the terminal. The ball moves with
continuous collision detection, so it never tunnels through blocks, and the
playfield shakes when the ball strikes something.

Available commands:
  play     - Play the campaign or the endless loop
  list     - Show the game modes
  levels   - Validate and describe a level pack
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --levels ./my-levels --endless
  breakout levels ./my-levels
  breakout serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// setupLogging builds the shared logger. The play command discards logs by
// default because the game owns the terminal.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var fallback io.Writer = os.Stderr
	if cmd == playCmd {
		fallback = io.Discard
	}

	l, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "breakout",
	}, fallback)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	log.SetDefault(l)
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
