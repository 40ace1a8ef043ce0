// beelazy is a terminal remake of the Bee Lazy side-scroller: keep the bee
// in the air, dodge obstacles and collect power-ups.
//
// Usage:
//
//	beelazy                  - Open the start menu (same as play)
//	beelazy play             - Open the start menu
//	beelazy scores           - Show high scores and run statistics
//	beelazy serve            - Start SSH server for remote play
//	beelazy config           - Print the default game config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Run history database (default: ~/.beelazy/scores.db)
//	--scores <path>       - High-score list (default: ~/.beelazy/highscores.json)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beelazy",
	Short: "Bee Lazy - keep the bee flying in your terminal",
	Long: `Bee Lazy is a side-scrolling arcade game for the terminal.

Hold the bee in the air, drag it around with the mouse and dodge the
obstacles flying in from the right. Every obstacle you pass scores a point,
power-ups make you invincible for a few seconds.

Available commands:
  play     - Open the start menu and play
  scores   - View high scores and run statistics
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  beelazy
  beelazy play --difficulty hard
  beelazy scores
  beelazy serve --ssh :2222`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beelazy/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "~/.beelazy/highscores.json", "Path to high-score list")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded during play otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
