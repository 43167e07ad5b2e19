// riverrun is a terminal river-combat game: steer a plane along a
// scrolling river, shoot enemies, and survive as long as you can.
//
// Usage:
//
//	riverrun                 - Play (same as 'riverrun play')
//	riverrun play            - Play with optional custom scene design
//	riverrun check           - Validate a scene design file
//	riverrun scores          - Show best runs
//	riverrun serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible scenes
//	--db <path>     - Set database path (default: ~/.riverrun/scores.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/riverrun/internal/games/river"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riverrun",
	Short: "River Run - a terminal river-combat game",
	Long: `River Run is a terminal arcade game. The river scrolls toward you;
keep your plane over the water, dodge the banks, and shoot the enemies
in your path.

Controls:
  A/Left, D/Right - Steer
  Space           - Fire
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  riverrun
  riverrun play --design ./scene.design
  riverrun check ./scene.design --width 100
  riverrun scores
  riverrun serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.riverrun/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.Flags().StringVar(&flagDesign, "design", "", "Path to a scene design file")
}
