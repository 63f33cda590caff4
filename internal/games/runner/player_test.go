package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestPlayerLandsAfterJump(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	ground := p.Y

	if !p.Jump(false) {
		t.Fatal("grounded player should jump")
	}
	if p.VY != -9 {
		t.Fatalf("VY = %v, expected -9", p.VY)
	}

	p.Update()
	if !near(p.VY, -8.4) || !near(p.Y, ground-8.4) {
		t.Errorf("after one tick: VY=%v Y=%v", p.VY, p.Y)
	}

	for i := 0; i < 100 && p.Airborne; i++ {
		p.Update()
	}
	if p.Airborne || p.Y != ground || p.VY != 0 {
		t.Errorf("player should land: Airborne=%v Y=%v VY=%v", p.Airborne, p.Y, p.VY)
	}
}

func TestPlayerCannotDoubleJump(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.Jump(true)
	p.Update()
	vy := p.VY

	if p.Jump(true) {
		t.Error("airborne jump should be refused")
	}
	if p.BeginJump(t0) {
		t.Error("airborne press should be refused")
	}
	if p.VY != vy {
		t.Errorf("VY changed from %v to %v", vy, p.VY)
	}
}

func TestPlayerHoldDecidesJumpSize(t *testing.T) {
	tests := []struct {
		name    string
		release time.Duration
		wantVY  float64
	}{
		{"tap", 0, -9},
		{"short hold", 100 * time.Millisecond, -9},
		{"at threshold", 150 * time.Millisecond, -13},
		{"long hold", 400 * time.Millisecond, -13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultRunnerConfig())
			p.BeginJump(t0)
			p.EndJump(t0.Add(tc.release))
			if p.VY != tc.wantVY {
				t.Errorf("VY = %v, expected %v", p.VY, tc.wantVY)
			}
		})
	}
}

func TestPlayerCancelWhileFallingIsNoop(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.BeginJump(t0)
	for p.VY < 0 {
		p.Update()
	}
	p.Update()
	vy := p.VY

	p.EndJump(t0.Add(50 * time.Millisecond))
	if p.VY != vy {
		t.Errorf("falling VY changed from %v to %v", vy, p.VY)
	}
}

func TestPlayerLargeJumpGoesHigher(t *testing.T) {
	apex := func(large bool) float64 {
		p := NewPlayer(config.DefaultRunnerConfig())
		p.Jump(large)
		top := p.Y
		for p.Airborne {
			p.Update()
			if p.Y < top {
				top = p.Y
			}
		}
		return top
	}

	if small, large := apex(false), apex(true); large >= small {
		t.Errorf("large apex %v should be above small apex %v", large, small)
	}
}

func TestPlayerHitboxInset(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	b := p.Bounds()
	if b.X != 105 || b.W != 40 || b.Y != p.Y+5 || b.H != 50 {
		t.Errorf("Bounds() = %+v", b)
	}
}
