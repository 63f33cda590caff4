package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var resetScoreCmd = &cobra.Command{
	Use:   "reset-score <game>",
	Short: "Forget a game's best score and run history",
	Long: `Delete the stored best score and every recorded run of a game.

Examples:
  arcade reset-score runner`,
	Args: cobra.ExactArgs(1),
	RunE: runResetScore,
}

func runResetScore(_ *cobra.Command, args []string) error {
	gameID := args[0]
	title, ok := registry.Title(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.host.Store == nil {
		return fmt.Errorf("scores database unavailable")
	}
	if err := s.host.Store.ClearHighScore(gameID); err != nil {
		return err
	}
	s.host.Logger.Info("score reset", "game", gameID)
	fmt.Printf("Cleared scores for %s.\n", title)
	return nil
}
