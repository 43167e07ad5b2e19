package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riverrun/internal/platform/tui"
	"github.com/vovakirdan/riverrun/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the best recorded runs: score, distance survived, and
run duration.

Examples:
  riverrun scores
  riverrun scores --plain`,
	Run: runScoresCmd,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print as plain text instead of the interactive table")
}

func runScoresCmd(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores renders the top runs as plain text.
func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - River Run")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'riverrun' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-10s  %s\n", "Rank", "Score", "Distance", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-10s  %s\n", "----", "-----", "--------", "--------", "----")

	for i, entry := range runs {
		duration := fmt.Sprintf("%d:%02d", entry.Duration/60, entry.Duration%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Distance, duration, dateStr)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d | Runs: %d | Avg score: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
}
