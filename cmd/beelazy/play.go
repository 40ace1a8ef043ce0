package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beelazy/internal/core"
	"github.com/vovakirdan/beelazy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the start menu and play",
	Long: `Open the start menu. Pick "Start Game" to play, "Show Highscore" to
browse the list, or change the difficulty with left/right.

Controls:
  Mouse press/release  - Fly / fall
  Mouse drag           - Move the bee sideways
  Space                - Short hop
  Up / Down            - Keep flying / fall
  Left / Right         - Nudge the bee sideways
  P                    - Pause
  R                    - Restart (after game over)
  B/Esc                - Back to the start menu
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Speed and obstacle count grow slowly with the score
  normal - Default progression
  hard   - Speed and obstacle count grow quickly
  fixed  - No progression

Examples:
  beelazy play
  beelazy play --difficulty easy
  beelazy play --seed 42
  beelazy play --config ./my-bee.yaml --log-file /tmp/bee.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	// The alternate screen owns the terminal, so logs never go to stderr
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	deps, closeDeps, err := loadDeps(logger)
	if err != nil {
		return err
	}
	defer closeDeps()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting local session", "seed", flagSeed, "fps", flagFPS)
	return tui.Run(deps, cfg)
}
