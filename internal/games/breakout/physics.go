package breakout

import (
	"math"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Ball represents the ball state in world units. X and Y are the center.
type Ball struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Circle returns the ball's collision shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.R}
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Launch places the ball at (x, y) heading upward at angle radians from
// vertical.
func (b *Ball) Launch(x, y, speed, angle float64) {
	b.X, b.Y = x, y
	b.VX = speed * math.Sin(angle)
	b.VY = -speed * math.Cos(angle)
}

// Move advances the ball one tick and reflects it off the side and top
// walls of a canvas of width w. It reports whether a wall was hit.
func (b *Ball) Move(w float64) bool {
	b.X += b.VX
	b.Y += b.VY

	hit := false
	if b.X-b.R <= 0 || b.X+b.R >= w {
		b.VX = -b.VX
		b.X = core.ClampF(b.X, b.R, w-b.R)
		hit = true
	}
	if b.Y-b.R <= 0 {
		b.VY = -b.VY
		b.Y = b.R
		hit = true
	}
	return hit
}

// Missed reports whether the ball has fully left through the bottom.
func (b *Ball) Missed(h float64) bool {
	return b.Y-b.R > h
}

// ReflectFromPaddle bounces the ball off the paddle when the ball overlaps
// the paddle band and its center is over the paddle. The outgoing angle
// depends only on where the paddle was hit, from -spread at the left end
// to +spread at the right end; speed is preserved.
func (b *Ball) ReflectFromPaddle(p *Paddle, spread float64) bool {
	if b.Y+b.R < p.Y || b.Y-b.R > p.Y+p.H || b.X < p.X || b.X > p.X+p.W {
		return false
	}

	hitPos := (b.X - p.X) / p.W
	angle := (hitPos - 0.5) * 2 * spread
	speed := b.Speed()
	b.VX = speed * math.Sin(angle)
	b.VY = -math.Abs(speed * math.Cos(angle))
	b.Y = p.Y - b.R
	return true
}

// BounceOffBox resolves a ball/box contact found by the closest-point test.
// The nearest box edge decides which velocity component flips, and the ball
// is pushed just outside that edge.
func (b *Ball) BounceOffBox(box core.AABB) core.Edge {
	edge := core.NearestEdge(box, b.X, b.Y)
	switch edge {
	case core.EdgeTop:
		b.VY = -b.VY
		b.Y = box.Y - b.R
	case core.EdgeBottom:
		b.VY = -b.VY
		b.Y = box.Bottom() + b.R
	case core.EdgeLeft:
		b.VX = -b.VX
		b.X = box.X - b.R
	case core.EdgeRight:
		b.VX = -b.VX
		b.X = box.Right() + b.R
	}
	return edge
}

// Paddle represents the player's paddle. X, Y is the top-left corner.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64

	canvasW float64
}

// NewPaddle creates a centered paddle.
func NewPaddle(cfg config.BreakoutConfig) *Paddle {
	p := &Paddle{
		Y:       cfg.Canvas.Height - cfg.Paddle.BottomOffset,
		W:       cfg.Paddle.Width,
		H:       cfg.Paddle.Height,
		Speed:   cfg.Paddle.Speed,
		canvasW: cfg.Canvas.Width,
	}
	p.Center()
	return p
}

// Center moves the paddle to the middle of the canvas.
func (p *Paddle) Center() {
	p.X = (p.canvasW - p.W) / 2
}

// Move shifts the paddle by dir × speed, staying on the canvas.
func (p *Paddle) Move(dir int) {
	p.X = core.ClampF(p.X+float64(dir)*p.Speed, 0, p.canvasW-p.W)
}

// MoveTo centers the paddle on x, staying on the canvas.
func (p *Paddle) MoveTo(x float64) {
	p.X = core.ClampF(x-p.W/2, 0, p.canvasW-p.W)
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.AABB {
	return core.NewAABB(p.X, p.Y, p.W, p.H)
}
