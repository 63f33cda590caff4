package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  M            - Toggle sound
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every game: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	opts, err := gameOptions()
	if err != nil {
		return err
	}

	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	return menuLoop(s, runtimeConfig(), opts)
}

// menuLoop alternates between the picker, the scoreboard and games until
// the player quits.
func menuLoop(s *session, cfg core.RuntimeConfig, opts registry.Options) error {
	logger := s.host.Logger

	for {
		result, err := tui.RunMenu(s.host, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(s.host, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID, s.host.Services(opts))
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		back, err := tui.Run(game, s.host, cfg)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
