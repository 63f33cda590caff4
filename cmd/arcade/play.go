package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space        - Hop (runner) / start
  Up/W         - High jump (runner)
  Mouse button - Jump, held longer for a higher jump (runner)
  Left/Right   - Move paddle (breakout), or follow the mouse
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  M            - Toggle sound
  B            - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Runner: slower base speed, fewer double obstacles
           Breakout: 5 lives, wider paddle, slower ball
  normal - Config values as loaded, speed ramps up with score
  hard   - Runner: faster base speed, tighter gaps, more doubles
           Breakout: 2 lives, narrower paddle, faster ball
  fixed  - Runner: speed and obstacle gaps never ramp up
           Breakout: same as normal

Examples:
  arcade play runner
  arcade play runner --difficulty easy
  arcade play breakout --seed 42
  arcade play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// gameOptions builds the per-run game options from the play flags.
func gameOptions() (registry.Options, error) {
	opts := registry.Options{ConfigPath: flagConfig}
	if flagDifficulty == "" {
		return opts, nil
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return opts, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	opts.Preset = preset
	return opts, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	opts, err := gameOptions()
	if err != nil {
		return err
	}

	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()
	game, err := registry.Create(gameID, s.host.Services(opts))
	if err != nil {
		return err
	}

	back, err := tui.Run(game, s.host, cfg)
	if err != nil {
		return err
	}
	if back {
		return menuLoop(s, cfg, opts)
	}
	return nil
}
