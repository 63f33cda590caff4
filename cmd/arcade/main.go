// arcade is a terminal arcade with an endless runner and a brick breaker.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game
//	arcade menu                 - Start menu to pick games interactively
//	arcade scores [game]        - Show run history
//	arcade reset-score <game>   - Forget a game's best score and runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Log destination (default: ~/.arcade/arcade.log)
//	--mute               - Disable audio output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mini-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/mini-arcade/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini Arcade - an endless runner and a brick breaker in your terminal",
	Long: `Mini Arcade runs two small action games in the terminal:
an endless runner and Breakout. Best scores and run history are kept
in a local SQLite database.

Available commands:
  list         - Show all available games
  play         - Play a specific game directly
  menu         - Interactive game picker menu
  scores       - View run history
  reset-score  - Forget a game's best score

Examples:
  arcade list
  arcade play runner
  arcade play breakout --difficulty hard
  arcade menu
  arcade scores runner`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetScoreCmd)
}
