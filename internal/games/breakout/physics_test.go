package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBallMove(t *testing.T) {
	tests := []struct {
		name           string
		ball           Ball
		wantX, wantY   float64
		wantVX, wantVY float64
		wantWall       bool
	}{
		{"free flight", Ball{X: 100, Y: 100, VX: 4, VY: -4, R: 8}, 104, 96, 4, -4, false},
		{"left wall", Ball{X: 10, Y: 100, VX: -4, VY: 2, R: 8}, 8, 102, 4, 2, true},
		{"right wall", Ball{X: 990, Y: 100, VX: 4, VY: 2, R: 8}, 992, 102, -4, 2, true},
		{"ceiling", Ball{X: 100, Y: 10, VX: 1, VY: -4, R: 8}, 101, 8, 1, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			wall := b.Move(1000)
			if wall != tc.wantWall {
				t.Errorf("wall = %v, expected %v", wall, tc.wantWall)
			}
			if !near(b.X, tc.wantX) || !near(b.Y, tc.wantY) {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.X, b.Y, tc.wantX, tc.wantY)
			}
			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestBallMissed(t *testing.T) {
	if (&Ball{Y: 508, R: 8}).Missed(500) {
		t.Error("ball touching the bottom edge is still in play")
	}
	if !(&Ball{Y: 509, R: 8}).Missed(500) {
		t.Error("ball fully below the canvas is missed")
	}
}

func TestReflectFromPaddle(t *testing.T) {
	spread := core.DegToRad(54)
	paddle := &Paddle{X: 450, Y: 450, W: 100, H: 15}

	tests := []struct {
		name   string
		x      float64
		hit    bool
		wantVX float64
	}{
		{"center", 500, true, 0},
		{"quarter", 475, true, 5 * math.Sin(-0.5*spread)},
		{"left end", 450, true, 5 * math.Sin(-spread)},
		{"right end", 550, true, 5 * math.Sin(spread)},
		{"beside", 449, false, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{X: tc.x, Y: 445, VX: 3, VY: 4, R: 8}
			if got := b.ReflectFromPaddle(paddle, spread); got != tc.hit {
				t.Fatalf("hit = %v, expected %v", got, tc.hit)
			}
			if !near(b.VX, tc.wantVX) {
				t.Errorf("VX = %v, expected %v", b.VX, tc.wantVX)
			}
			if !tc.hit {
				return
			}
			if b.VY >= 0 {
				t.Errorf("VY = %v, ball should head up", b.VY)
			}
			if !near(b.Speed(), 5) {
				t.Errorf("speed = %v, expected 5", b.Speed())
			}
			if b.Y != paddle.Y-b.R {
				t.Errorf("Y = %v, expected ball resting on paddle", b.Y)
			}
		})
	}
}

func TestBounceOffBox(t *testing.T) {
	box := core.NewAABB(100, 100, 80, 25)

	tests := []struct {
		name     string
		x, y     float64
		want     core.Edge
		wantX    float64
		wantY    float64
		flipsVY  bool
	}{
		{"corner tie prefers top", 95, 95, core.EdgeTop, 95, 92, true},
		{"bottom", 140, 130, core.EdgeBottom, 140, 133, true},
		{"left", 95, 112, core.EdgeLeft, 92, 112, false},
		{"right", 185, 112, core.EdgeRight, 188, 112, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{X: tc.x, Y: tc.y, VX: 4, VY: 4, R: 8}
			if got := b.BounceOffBox(box); got != tc.want {
				t.Fatalf("edge = %v, expected %v", got, tc.want)
			}
			if b.X != tc.wantX || b.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.X, b.Y, tc.wantX, tc.wantY)
			}
			if tc.flipsVY && (b.VY != -4 || b.VX != 4) {
				t.Errorf("velocity = (%v, %v), expected VY flip", b.VX, b.VY)
			}
			if !tc.flipsVY && (b.VX != -4 || b.VY != 4) {
				t.Errorf("velocity = (%v, %v), expected VX flip", b.VX, b.VY)
			}
		})
	}
}

func TestPaddleMovement(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())
	if p.X != 450 || p.Y != 450 {
		t.Fatalf("paddle starts at (%v, %v)", p.X, p.Y)
	}

	p.Move(-1)
	if p.X != 442 {
		t.Errorf("X = %v after moving left", p.X)
	}

	p.MoveTo(0)
	if p.X != 0 {
		t.Errorf("X = %v, paddle should clamp at the left wall", p.X)
	}
	p.MoveTo(2000)
	if p.X != 900 {
		t.Errorf("X = %v, paddle should clamp at the right wall", p.X)
	}
	p.Move(1)
	if p.X != 900 {
		t.Errorf("X = %v, paddle left the canvas", p.X)
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(config.DefaultBreakoutConfig())
	if len(g.Bricks) != 50 || g.Alive() != 50 {
		t.Fatalf("grid has %d bricks, %d alive", len(g.Bricks), g.Alive())
	}

	first := g.Bricks[0]
	if first.X != 77.5 || first.Y != 60 || first.W != 80 || first.H != 25 {
		t.Errorf("first brick = %+v", first)
	}
	if g.Bricks[10].Y != 90 {
		t.Errorf("second row at y=%v, expected 90", g.Bricks[10].Y)
	}

	wantPoints := []float64{50, 40, 30, 20, 10}
	for row, want := range wantPoints {
		b := g.Bricks[row*10]
		if b.Points != want || b.Color != rowColors[row] {
			t.Errorf("row %d: points %v color %v", row, b.Points, b.Color)
		}
	}
}
