package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show run history",
	Long: `Without arguments, summarize every game. With a game ID, list its
best runs. Runs that set a new record are marked with *.

Examples:
  arcade scores
  arcade scores runner
  arcade scores breakout --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.host.Store == nil {
		return fmt.Errorf("scores database unavailable")
	}

	if len(args) == 0 {
		return printSummary(s.host.Store)
	}

	gameID := args[0]
	title, ok := registry.Title(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	return printRuns(s.host.Store, gameID, title, flagLimit)
}

// printSummary prints one line of stats per registered game.
func printSummary(store *storage.Store) error {
	stats, err := store.AllGameStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %8s  %6s  %8s  %s\n", "Game", "Best", "Runs", "Average", "Last played")
	fmt.Printf("  %-10s  %8s  %6s  %8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok || st.RunsCount == 0 {
			fmt.Printf("  %-10s  %8s  %6d  %8s  %s\n", g.ID, "-", 0, "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %8d  %6d  %8d  %s\n",
			g.ID, int(st.HighScore), st.RunsCount, int(st.AvgScore),
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// printRuns prints the best runs of one game.
func printRuns(store *storage.Store, gameID, title string, limit int) error {
	runs, err := store.TopRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, r := range runs {
		mark := ""
		if r.NewRecord {
			mark = " *"
		}
		fmt.Printf("  %-4d  %-10d  %s%s\n", i+1, int(r.Score), r.CreatedAt.Local().Format("2006-01-02 15:04"), mark)
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  (%d runs)\n", int(stats.HighScore), stats.RunsCount)
	return nil
}
