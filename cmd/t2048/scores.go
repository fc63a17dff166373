package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui2048/internal/game"
	"github.com/vovakirdan/tui2048/internal/platform/tui"
	"github.com/vovakirdan/tui2048/internal/storage"
)

var (
	flagLimit     int
	flagResetBest bool
	flagClear     bool
	flagBoard     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score history and the best score",
	Long: `Display the top scores of finished games and the best score.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --board        # interactive scoreboard
  t2048 scores --reset-best   # forget the best score
  t2048 scores --clear        # delete the score history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagResetBest, "reset-best", false, "Reset the best score to 0")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history")
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, logger := mustSetup(os.Stderr, "t2048")
	defer logger.Close()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetBest {
		if err := store.ClearBest(game.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score reset.")
	}
	if flagClear {
		if err := store.ClearScores(game.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Score history cleared.")
	}

	if flagBoard {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(game.ID, limit)
	} else {
		scores, err = store.AllScores(game.ID)
	}
	if err != nil {
		return err
	}
	best, err := store.BestScore(game.ID)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games finished yet.")
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
		fmt.Println("Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-3s  %s\n", "Rank", "Score", "Max tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-3s  %s\n", "----", "-----", "--------", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-10d  %-8d  %-3s  %s\n",
			i+1, entry.Score, entry.MaxTile, won, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(game.ID)
	if err != nil {
		return err
	}

	high, err := store.HighScore(game.ID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d (highest finished game: %d)\n", best, high)
	fmt.Printf("Games: %d  Average: %.0f  Best tile: %d  Wins: %d\n",
		stats.GamesCount, stats.AvgScore, stats.BestTile, stats.WinCount)
	return nil
}
