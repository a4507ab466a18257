package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the best finished runs for the specified mode.

Examples:
  shooter scores arena
  shooter scores arena3d --limit 25
  shooter scores arena --tui
  shooter scores arena --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", gameID)

	case flagScoresTUI:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	default:
		if err := printScores(cmd, store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		}
	}
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID string) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'shooter play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Run", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "---", "----")
	for i, entry := range scores {
		run := entry.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-8s  %s\n",
			i+1, entry.Score, entry.Level, run, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Best level: %d  Average: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.BestLevel, stats.AvgScore)
	return nil
}
