package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mappy/internal/platform/tui"
)

var (
	flagScoresLimit int
	flagScoresTable bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best scores, ranked by score and then by round reached.

Examples:
  mappy scores
  mappy scores --limit 5
  mappy scores --table     # Interactive scrollable table
  mappy scores --clear     # Delete every score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Score table cleared.")
		return
	}

	if flagScoresTable {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Mappy")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mappy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-4s  %-10s  %-5s  %s\n", "Rank", "Name", "Score", "Round", "Date")
	fmt.Printf("  %-4s  %-4s  %-10s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-4s  %-10d  %-5d  %s\n",
			i+1, entry.Name, entry.Score, entry.Round, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Best round: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestRound, stats.AvgScore)
	}
}
