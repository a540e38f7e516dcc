package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/steelwall/internal/platform/tui"
	"github.com/vovakirdan/steelwall/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 runs, the best recorded run, and the stored
high score. With --tui, browse the full leaderboard interactively.
--clear empties the leaderboard but keeps the stored high score.

Examples:
  steelwall scores
  steelwall scores --tui
  steelwall scores --all
  steelwall scores --clear
  steelwall scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	case flagScoresTUI:
		rt := runtimeConfig()
		return tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
	}

	// Get top scores
	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(storage.GameID)
	} else {
		scores, err = store.TopScores(storage.GameID, 10)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	// Display scores
	fmt.Println("High Scores - Balls of Steel")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'steelwall play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, player, entry.Score, dateStr)
	}

	// Show best run and the stored high score
	fmt.Println()
	if best, err := store.HighScore(storage.GameID); err == nil {
		fmt.Printf("Best run:   %d\n", best)
	}
	if hi, err := store.GetInt(storage.HighScoreKey, 0); err == nil {
		fmt.Printf("High score: %d\n", hi)
	}
	return nil
}
