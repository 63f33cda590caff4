package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Player is the runner character. Y grows downward; the player rests at
// groundY and can only start a jump from there.
type Player struct {
	X, Y     float64
	W, H     float64
	VY       float64
	Airborne bool

	groundY   float64
	gravity   float64
	smallJump float64
	largeJump float64
	inset     float64
	hold      time.Duration

	pressedAt time.Time
	holding   bool
}

// NewPlayer places a grounded player according to cfg.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		X:         cfg.Player.X,
		W:         cfg.Player.Width,
		H:         cfg.Player.Height,
		groundY:   cfg.Canvas.Height - cfg.Player.GroundOffset,
		gravity:   cfg.Physics.Gravity,
		smallJump: cfg.Physics.SmallJump,
		largeJump: cfg.Physics.LargeJump,
		inset:     cfg.Physics.HitboxInset,
		hold:      time.Duration(cfg.Physics.HoldMs) * time.Millisecond,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground at rest.
func (p *Player) Reset() {
	p.Y = p.groundY
	p.VY = 0
	p.Airborne = false
	p.holding = false
	p.pressedAt = time.Time{}
}

// GroundY returns the resting top coordinate.
func (p *Player) GroundY() float64 {
	return p.groundY
}

// Jump applies a small or large impulse. Airborne players cannot jump.
func (p *Player) Jump(large bool) bool {
	if p.Airborne {
		return false
	}
	if large {
		p.VY = p.largeJump
	} else {
		p.VY = p.smallJump
	}
	p.Airborne = true
	return true
}

// BeginJump starts a jump on press. The jump is large until the matching
// release proves it was a tap.
func (p *Player) BeginJump(at time.Time) bool {
	if !p.Jump(true) {
		return false
	}
	p.pressedAt = at
	p.holding = true
	return true
}

// EndJump finishes a press. A release within the hold threshold trims the
// jump down to a small one.
func (p *Player) EndJump(at time.Time) {
	if !p.holding {
		return
	}
	p.holding = false
	if at.Sub(p.pressedAt) < p.hold {
		p.CancelJump()
	}
}

// CancelJump removes the difference between the large and small impulse
// while the player is still rising. Falling players are unaffected.
func (p *Player) CancelJump() {
	if !p.Airborne || p.VY >= 0 {
		return
	}
	p.VY = math.Min(p.VY+(p.smallJump-p.largeJump), 0)
}

// Update integrates one tick of gravity and lands the player.
func (p *Player) Update() {
	if !p.Airborne {
		return
	}
	p.VY += p.gravity
	p.Y += p.VY
	if p.Y >= p.groundY {
		p.Y = p.groundY
		p.VY = 0
		p.Airborne = false
		p.holding = false
	}
}

// Bounds returns the collision box, shrunk by the hitbox inset.
func (p *Player) Bounds() core.AABB {
	return core.NewAABB(p.X, p.Y, p.W, p.H).Inset(p.inset)
}
