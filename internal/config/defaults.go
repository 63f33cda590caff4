package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file is unusable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{Width: 800, Height: 400},
		Physics: RunnerPhysics{
			Gravity:     0.6,
			SmallJump:   -9,
			LargeJump:   -13,
			HoldMs:      150,
			HitboxInset: 5,
		},
		Player: RunnerPlayer{
			X:            100,
			Width:        50,
			Height:       60,
			GroundOffset: 150,
		},
		Speed: RunnerSpeed{
			Base:      5,
			Increment: 0.5,
			Every:     200,
		},
		Spawn: RunnerSpawn{
			MinInterval:  80,
			MaxInterval:  140,
			DoubleChance: 0.25,
			DoubleDelay:  12,
			GroundOffset: 120,
			AirOffset:    220,
		},
		Tiers: []SpawnTier{
			{Score: 200, MinInterval: 75, MaxInterval: 130, DoubleChance: 0.25},
			{Score: 500, MinInterval: 70, MaxInterval: 120, DoubleChance: 0.30},
			{Score: 1000, MinInterval: 60, MaxInterval: 100, DoubleChance: 0.35},
		},
		Scoring: RunnerScoring{
			PerFrame:    0.1,
			PerObstacle: 10,
		},
		Obstacles: ObstacleSizes{
			CactusSmall: Size{W: 25, H: 40},
			CactusLarge: Size{W: 30, H: 60},
			Rock:        Size{W: 35, H: 35},
			Spike:       Size{W: 30, H: 45},
			Bird:        Size{W: 40, H: 30},
			Bat:         Size{W: 35, H: 25},
		},
		Difficulty: DifficultyConfig{Enabled: true},
	}
}

// DefaultBreakoutConfig returns the built-in Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{Width: 1000, Height: 500},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       15,
			Speed:        8,
			BottomOffset: 50,
		},
		Ball: BreakoutBall{
			Radius:       8,
			Speed:        4,
			LaunchOffset: 100,
			LaunchSpread: 36,
			BounceSpread: 54,
		},
		Bricks: BreakoutBricks{
			Rows:      5,
			Cols:      10,
			Width:     80,
			Height:    25,
			Padding:   5,
			OffsetTop: 60,
			RowPoints: []float64{50, 40, 30, 20, 10},
		},
		Gameplay: BreakoutGameplay{
			Lives:      3,
			LevelBonus: 100,
		},
		Difficulty: DifficultyConfig{Enabled: true},
	}
}
