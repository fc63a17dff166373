// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 scores             - Show score history and best score
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set input tick rate (default: config display.tick_rate)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - Override config log.level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the board with the
arrow keys, WASD, HJKL or a mouse swipe; equal tiles merge and double.
Reach 2048 to win, then keep going for a higher score.

Available commands:
  play     - Play a game
  scores   - View score history and the best score
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 scores --limit 20
  t2048 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Input tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
