package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/platform/tui"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
	flagRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs.

On a terminal an interactive table is shown; use --plain (or pipe the
output) for a text listing.

Examples:
  roadrush scores
  roadrush scores --plain --limit 5
  roadrush scores --run 3f2a9c1e-...
  roadrush scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to list")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing even on a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show the score of a single run by its ID")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(road.ID); err != nil {
			logger.Error("cannot clear scores", "error", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagRun != "" {
		showRun(store, flagRun)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			logger.Error("scoreboard failed", "error", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(road.ID, flagLimit)
	if err != nil {
		logger.Error("cannot retrieve scores", "error", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", road.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'roadrush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "---", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, entry.RunID.String()[:8], dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(road.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(road.ID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.RunsCount, stats.AvgScore)
	}
}

func showRun(store *storage.Store, id string) {
	runID, err := uuid.Parse(id)
	if err != nil {
		logger.Error("invalid run id", "run", id, "error", err)
		os.Exit(1)
	}

	entry, err := store.Run(runID)
	if err != nil {
		logger.Error("cannot look up run", "error", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Printf("No score recorded for run %s.\n", runID)
		return
	}

	fmt.Printf("Run:   %s\n", entry.RunID)
	fmt.Printf("Score: %d\n", entry.Score)
	fmt.Printf("Date:  %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
}
