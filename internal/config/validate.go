package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas must have a positive size, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Physics.Gravity <= 0 {
		return invalid("gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.SmallJump >= 0 || c.Physics.LargeJump >= 0 {
		return invalid("jump impulses must be negative (upwards)")
	}
	if c.Physics.LargeJump > c.Physics.SmallJump {
		return invalid("large jump (%v) must be at least as strong as small jump (%v)", c.Physics.LargeJump, c.Physics.SmallJump)
	}
	if c.Physics.HoldMs < 0 {
		return invalid("hold_ms must not be negative")
	}
	if c.Player.Width <= 2*c.Physics.HitboxInset || c.Player.Height <= 2*c.Physics.HitboxInset {
		return invalid("player %vx%v is too small for hitbox inset %v", c.Player.Width, c.Player.Height, c.Physics.HitboxInset)
	}
	if c.Player.GroundOffset <= 0 || c.Player.GroundOffset >= c.Canvas.Height {
		return invalid("player ground offset %v is outside the canvas", c.Player.GroundOffset)
	}
	if c.Speed.Base <= 0 {
		return invalid("base speed must be positive")
	}
	if c.Speed.Increment < 0 || c.Speed.Every <= 0 {
		return invalid("speed increment must be >= 0 and every > 0")
	}
	if err := validateInterval("spawn", c.Spawn.MinInterval, c.Spawn.MaxInterval, c.Spawn.DoubleChance); err != nil {
		return err
	}
	if c.Spawn.DoubleDelay <= 0 {
		return invalid("double delay must be positive")
	}
	prev := -1.0
	for i, t := range c.Tiers {
		if t.Score <= prev {
			return invalid("tier %d: scores must be strictly increasing", i)
		}
		prev = t.Score
		if err := validateInterval(fmt.Sprintf("tier %d", i), t.MinInterval, t.MaxInterval, t.DoubleChance); err != nil {
			return err
		}
	}
	if c.Scoring.PerFrame < 0 || c.Scoring.PerObstacle < 0 {
		return invalid("scoring must not be negative")
	}
	for name, s := range map[string]Size{
		"cactus_small": c.Obstacles.CactusSmall,
		"cactus_large": c.Obstacles.CactusLarge,
		"rock":         c.Obstacles.Rock,
		"spike":        c.Obstacles.Spike,
		"bird":         c.Obstacles.Bird,
		"bat":          c.Obstacles.Bat,
	} {
		if s.W <= 2*c.Physics.HitboxInset || s.H <= 2*c.Physics.HitboxInset {
			return invalid("obstacle %s (%vx%v) is too small for hitbox inset %v", name, s.W, s.H, c.Physics.HitboxInset)
		}
	}
	return nil
}

func validateInterval(what string, min, max int, chance float64) error {
	if min <= 0 {
		return invalid("%s: min interval must be positive, got %d", what, min)
	}
	if min > max {
		return invalid("%s: min interval %d exceeds max %d", what, min, max)
	}
	if chance < 0 || chance > 1 {
		return invalid("%s: double chance %v is not a probability", what, chance)
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas must have a positive size, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("paddle must have a positive size, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width >= c.Canvas.Width {
		return invalid("paddle width %v does not fit the canvas", c.Paddle.Width)
	}
	if c.Paddle.Speed <= 0 {
		return invalid("paddle speed must be positive")
	}
	if c.Paddle.BottomOffset <= 0 || c.Paddle.BottomOffset >= c.Canvas.Height {
		return invalid("paddle offset %v is outside the canvas", c.Paddle.BottomOffset)
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 {
		return invalid("ball radius and speed must be positive")
	}
	if c.Ball.LaunchSpread < 0 || c.Ball.LaunchSpread >= 90 {
		return invalid("launch spread must be in [0, 90) degrees, got %v", c.Ball.LaunchSpread)
	}
	if c.Ball.BounceSpread < 0 || c.Ball.BounceSpread >= 90 {
		return invalid("bounce spread must be in [0, 90) degrees, got %v", c.Ball.BounceSpread)
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		return invalid("brick grid must have rows and columns")
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Padding < 0 {
		return invalid("bricks must have a positive size")
	}
	if gridW := float64(c.Bricks.Cols)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding; gridW > c.Canvas.Width {
		return invalid("brick grid width %v exceeds canvas width %v", gridW, c.Canvas.Width)
	}
	if len(c.Bricks.RowPoints) == 0 {
		return invalid("row_points must not be empty")
	}
	if c.Gameplay.Lives <= 0 {
		return invalid("lives must be positive")
	}
	if c.Gameplay.LevelBonus < 0 {
		return invalid("level bonus must not be negative")
	}
	return nil
}
