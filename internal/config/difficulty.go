package config

import "math"

// DifficultyManager derives the runner's score-driven parameters.
// Speed and spawn timing scale independently: speed steps every
// Speed.Every points, spawn timing follows the tier table.
type DifficultyManager struct {
	speed   RunnerSpeed
	spawn   RunnerSpawn
	tiers   []SpawnTier
	enabled bool
}

// NewDifficultyManager creates a manager for a validated runner config.
func NewDifficultyManager(cfg RunnerConfig) *DifficultyManager {
	return &DifficultyManager{
		speed:   cfg.Speed,
		spawn:   cfg.Spawn,
		tiers:   cfg.Tiers,
		enabled: cfg.Difficulty.Enabled,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled
}

// Speed returns base + floor(score / every) × increment.
func (d *DifficultyManager) Speed(score float64) float64 {
	if !d.enabled {
		return d.speed.Base
	}
	return d.speed.Base + math.Floor(score/d.speed.Every)*d.speed.Increment
}

// Level returns the index of the active tier plus one; 0 means no tier
// applies yet. Tiers compare against the displayed (floored) score.
func (d *DifficultyManager) Level(score float64) int {
	if !d.enabled {
		return 0
	}
	level := 0
	for i, t := range d.tiers {
		if math.Floor(score) > t.Score {
			level = i + 1
		}
	}
	return level
}

// Spawn returns the spawn timing for the given score.
func (d *DifficultyManager) Spawn(score float64) SpawnTier {
	if level := d.Level(score); level > 0 {
		return d.tiers[level-1]
	}
	return SpawnTier{
		MinInterval:  d.spawn.MinInterval,
		MaxInterval:  d.spawn.MaxInterval,
		DoubleChance: d.spawn.DoubleChance,
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Speed.Base = 4
		cfg.Spawn.DoubleChance = 0.1
		for i := range cfg.Tiers {
			cfg.Tiers[i].DoubleChance /= 2
		}
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Speed.Base = 6
		cfg.Spawn.MinInterval = 70
		cfg.Spawn.MaxInterval = 120
		for i := range cfg.Tiers {
			cfg.Tiers[i].DoubleChance = math.Min(cfg.Tiers[i].DoubleChance+0.1, 1)
		}
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Breakout has no progression to freeze, so the fixed preset is a no-op.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.Speed = 3.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 75
		cfg.Ball.Speed = 5
	}
}
