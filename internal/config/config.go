// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// All simulation constants live here. They are validated once when loaded so
// the games never have to guard against degenerate values per tick.
package config

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// CanvasConfig is the size of the simulated world.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Speed      RunnerSpeed      `yaml:"speed"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Tiers      []SpawnTier      `yaml:"tiers"`
	Scoring    RunnerScoring    `yaml:"scoring"`
	Obstacles  ObstacleSizes    `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines the jump model.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	SmallJump   float64 `yaml:"small_jump"` // Impulse for a tapped jump (negative = up)
	LargeJump   float64 `yaml:"large_jump"` // Impulse for a held jump
	HoldMs      int     `yaml:"hold_ms"`    // Releases shorter than this turn a large jump into a small one
	HitboxInset float64 `yaml:"hitbox_inset"`
}

// RunnerPlayer positions the runner.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Player top when grounded = canvas height - offset
}

// RunnerSpeed defines horizontal scroll speed.
type RunnerSpeed struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"`
	Every     float64 `yaml:"every"` // Points per increment
}

// RunnerSpawn defines initial obstacle timing and lane placement.
type RunnerSpawn struct {
	MinInterval  int     `yaml:"min_interval"` // Frames
	MaxInterval  int     `yaml:"max_interval"`
	DoubleChance float64 `yaml:"double_chance"`
	DoubleDelay  int     `yaml:"double_delay"`  // Frames between the two obstacles of a double
	GroundOffset float64 `yaml:"ground_offset"` // Ground obstacle top = canvas height - offset
	AirOffset    float64 `yaml:"air_offset"`
}

// SpawnTier overrides spawn timing once the score exceeds Score.
type SpawnTier struct {
	Score        float64 `yaml:"score"`
	MinInterval  int     `yaml:"min_interval"`
	MaxInterval  int     `yaml:"max_interval"`
	DoubleChance float64 `yaml:"double_chance"`
}

// RunnerScoring defines points.
type RunnerScoring struct {
	PerFrame    float64 `yaml:"per_frame"`
	PerObstacle float64 `yaml:"per_obstacle"`
}

// ObstacleSizes lists the size of every obstacle kind.
type ObstacleSizes struct {
	CactusSmall Size `yaml:"cactus_small"`
	CactusLarge Size `yaml:"cactus_large"`
	Rock        Size `yaml:"rock"`
	Spike       Size `yaml:"spike"`
	Bird        Size `yaml:"bird"`
	Bat         Size `yaml:"bat"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Paddle top = canvas height - offset
}

// BreakoutBall defines the ball and its reflection angles.
type BreakoutBall struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	LaunchOffset float64 `yaml:"launch_offset"` // Launch y = canvas height - offset
	LaunchSpread float64 `yaml:"launch_spread"` // Max launch angle from vertical, degrees
	BounceSpread float64 `yaml:"bounce_spread"` // Max paddle reflection angle from vertical, degrees
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Rows      int       `yaml:"rows"`
	Cols      int       `yaml:"cols"`
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	Padding   float64   `yaml:"padding"`
	OffsetTop float64   `yaml:"offset_top"`
	RowPoints []float64 `yaml:"row_points"` // Points by row, cycled
}

// BreakoutGameplay defines lives and level bonus.
type BreakoutGameplay struct {
	Lives      int     `yaml:"lives"`
	LevelBonus float64 `yaml:"level_bonus"` // Bonus = level bonus × new level
}

// DifficultyConfig toggles score-driven progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "" and
// false, which keeps the config's own settings.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
