package runner

import (
	"math/rand"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Lane is the vertical band an obstacle occupies.
type Lane int

const (
	LaneGround Lane = iota
	LaneAir
)

func (l Lane) String() string {
	if l == LaneAir {
		return "air"
	}
	return "ground"
}

// Kind is the obstacle variant.
type Kind int

const (
	KindCactusSmall Kind = iota
	KindCactusLarge
	KindRock
	KindSpike
	KindBird
	KindBat
)

var (
	groundKinds = []Kind{KindCactusSmall, KindCactusLarge, KindRock, KindSpike}
	airKinds    = []Kind{KindBird, KindBat}
)

// KindsFor returns the variants that spawn in a lane.
func KindsFor(l Lane) []Kind {
	if l == LaneAir {
		return airKinds
	}
	return groundKinds
}

func (k Kind) String() string {
	switch k {
	case KindCactusSmall:
		return "cactus_small"
	case KindCactusLarge:
		return "cactus_large"
	case KindRock:
		return "rock"
	case KindSpike:
		return "spike"
	case KindBird:
		return "bird"
	case KindBat:
		return "bat"
	default:
		return "unknown"
	}
}

// Lane returns the lane the kind belongs to.
func (k Kind) Lane() Lane {
	switch k {
	case KindBird, KindBat:
		return LaneAir
	default:
		return LaneGround
	}
}

// Size looks up the kind's dimensions.
func (k Kind) Size(s config.ObstacleSizes) config.Size {
	switch k {
	case KindCactusSmall:
		return s.CactusSmall
	case KindCactusLarge:
		return s.CactusLarge
	case KindRock:
		return s.Rock
	case KindSpike:
		return s.Spike
	case KindBird:
		return s.Bird
	case KindBat:
		return s.Bat
	default:
		return config.Size{}
	}
}

// Obstacle is a scrolling hazard.
type Obstacle struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	inset float64
}

// Update scrolls the obstacle left.
func (o *Obstacle) Update(speed float64) {
	o.X -= speed
}

// OffScreen reports whether the obstacle has fully left the canvas.
func (o Obstacle) OffScreen() bool {
	return o.X+o.W < 0
}

// Bounds returns the collision box, shrunk by the hitbox inset.
func (o Obstacle) Bounds() core.AABB {
	return core.NewAABB(o.X, o.Y, o.W, o.H).Inset(o.inset)
}

// Spawner decides when and what to spawn.
//
// Every spawn draws a fresh interval from [min, max], except that with
// probability doubleChance the next obstacle follows after a short fixed
// delay in the same lane. The obstacle after a double always draws again.
type Spawner struct {
	rng *rand.Rand

	canvas config.CanvasConfig
	spawn  config.RunnerSpawn
	sizes  config.ObstacleSizes
	inset  float64

	timer        int
	interval     int
	min, max     int
	doubleChance float64

	pendingDouble bool
	doubleLane    Lane
}

// NewSpawner creates a spawner seeded for deterministic runs.
func NewSpawner(cfg config.RunnerConfig, seed int64) *Spawner {
	s := &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		canvas: cfg.Canvas,
		spawn:  cfg.Spawn,
		sizes:  cfg.Obstacles,
		inset:  cfg.Physics.HitboxInset,
	}
	s.Reset()
	return s
}

// Reset restores the initial timing. The RNG keeps its position so that
// consecutive runs differ while staying reproducible from the seed.
func (s *Spawner) Reset() {
	s.min = s.spawn.MinInterval
	s.max = s.spawn.MaxInterval
	s.doubleChance = s.spawn.DoubleChance
	s.timer = 0
	s.pendingDouble = false
	s.interval = s.drawInterval()
}

// ApplyTier switches to new spawn timing. The interval already in
// progress is kept.
func (s *Spawner) ApplyTier(t config.SpawnTier) {
	s.min = t.MinInterval
	s.max = t.MaxInterval
	s.doubleChance = t.DoubleChance
}

// Range returns the active interval bounds in frames.
func (s *Spawner) Range() (int, int) {
	return s.min, s.max
}

// DoubleChance returns the active double probability.
func (s *Spawner) DoubleChance() float64 {
	return s.doubleChance
}

// Interval returns the frames between the last spawn and the next.
func (s *Spawner) Interval() int {
	return s.interval
}

// Tick advances the spawn timer by one frame and spawns when it is due.
func (s *Spawner) Tick() (Obstacle, bool) {
	s.timer++
	if s.timer < s.interval {
		return Obstacle{}, false
	}
	s.timer = 0
	return s.Spawn(), true
}

// Spawn creates an obstacle at the right edge and schedules the next one.
func (s *Spawner) Spawn() Obstacle {
	lane := s.doubleLane
	if !s.pendingDouble {
		lane = LaneGround
		if s.rng.Float64() >= 0.5 {
			lane = LaneAir
		}
	}

	kinds := KindsFor(lane)
	kind := kinds[s.rng.Intn(len(kinds))]
	size := kind.Size(s.sizes)

	y := s.canvas.Height - s.spawn.GroundOffset
	if lane == LaneAir {
		y = s.canvas.Height - s.spawn.AirOffset
	}

	switch {
	case s.pendingDouble:
		s.pendingDouble = false
		s.interval = s.drawInterval()
	case s.rng.Float64() < s.doubleChance:
		s.pendingDouble = true
		s.doubleLane = lane
		s.interval = s.spawn.DoubleDelay
	default:
		s.interval = s.drawInterval()
	}

	return Obstacle{
		Kind:  kind,
		X:     s.canvas.Width,
		Y:     y,
		W:     size.W,
		H:     size.H,
		inset: s.inset,
	}
}

func (s *Spawner) drawInterval() int {
	return s.min + s.rng.Intn(s.max-s.min+1)
}
