package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beelazy/internal/storage"
)

var (
	flagScoresTop   int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run statistics",
	Long: `Display the best scores from the high-score list together with
statistics from the run history.

Examples:
  beelazy scores
  beelazy scores --top 20
  beelazy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresTop, "top", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	deps, closeDeps, err := loadDeps(logger)
	if err != nil {
		return err
	}
	defer closeDeps()

	if flagScoresClear {
		if deps.Board != nil {
			if err := deps.Board.Clear(); err != nil {
				return fmt.Errorf("clearing high scores: %w", err)
			}
		}
		if deps.Store != nil {
			if err := deps.Store.ClearRuns(storage.GameID); err != nil {
				return fmt.Errorf("clearing run history: %w", err)
			}
		}
		fmt.Fprintln(out, "All scores cleared.")
		return nil
	}

	fmt.Fprintln(out, "High Scores - Bee Lazy")
	fmt.Fprintln(out)

	var scores []int
	if deps.Board != nil {
		scores = deps.Board.Top(flagScoresTop)
	}
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'beelazy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %s\n", "Rank", "Score")
	fmt.Fprintf(out, "  %-4s  %s\n", "----", "-----")
	for i, s := range scores {
		fmt.Fprintf(out, "  %-4d  %d\n", i+1, s)
	}

	if deps.Store != nil {
		printStats(out, deps.Store)
	}
	return nil
}

// printStats prints the run history summary. Missing history is not an error.
func printStats(out io.Writer, store *storage.Store) {
	stats, err := store.Stats(storage.GameID)
	if err != nil || stats.RunsCount == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs played: %d\n", stats.RunsCount)
	fmt.Fprintf(out, "Best run:    %d\n", stats.HighScore)
	fmt.Fprintf(out, "Average:     %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentRuns(storage.GameID, 5)
	if err != nil || len(recent) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent runs:")
	for _, r := range recent {
		fmt.Fprintf(out, "  %s  %-6d  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Player)
	}
}
