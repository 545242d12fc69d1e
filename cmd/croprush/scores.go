package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crop-rush/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best results for a mode",
	Long: `Display the best results for a mode along with totals.

The mode defaults to "vs-ai". With --recent the latest results of all
modes are listed instead.

Examples:
  croprush scores
  croprush scores solo --limit 5
  croprush scores --recent
  croprush scores croprush --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent results of all modes")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the mode")
}

var outcomeText = map[string]string{
	storage.OutcomeWin:    "win",
	storage.OutcomeAIWon:  "AI won",
	storage.OutcomeTimeUp: "time up",
}

func runScores(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			colorErr.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared all results for %s.\n", gameID)
		return
	}

	var results []storage.Result
	if flagScoresRecent {
		results, err = store.RecentResults(flagScoresLimit)
		colorTitle.Println("Recent results:")
	} else {
		results, err = store.TopScores(gameID, flagScoresLimit)
		colorTitle.Printf("Best results for %s:\n", gameID)
	}
	if err != nil {
		colorErr.Fprintf(os.Stderr, "Error fetching scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("  No results yet. Play a game first!")
		return
	}

	colorDim.Printf("  %-4s  %-14s  %6s  %5s  %5s  %-8s  %s\n", "Rank", "Mode", "Score", "AI", "Level", "Result", "Date")
	colorDim.Printf("  %-4s  %-14s  %6s  %5s  %5s  %-8s  %s\n", "----", "----", "-----", "--", "-----", "------", "----")
	for i, r := range results {
		outcome, ok := outcomeText[r.Outcome]
		if !ok {
			outcome = r.Outcome
		}
		line := fmt.Sprintf("  %-4d  %-14s  %6d  %5d  %5d  %-8s  %s",
			i+1, r.GameID, r.Score, r.AIScore, r.Level, outcome, r.CreatedAt.Format("2006-01-02 15:04"))
		if r.Outcome == storage.OutcomeWin {
			colorInfo.Println(line)
		} else {
			fmt.Println(line)
		}
	}

	if flagScoresRecent {
		return
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		colorWarn.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("  Played %d  |  Wins %d  |  Best level %d  |  Avg score %.1f\n",
		stats.Played, stats.Wins, stats.BestLevel, stats.AvgScore)
}
