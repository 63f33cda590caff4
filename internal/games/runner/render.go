package runner

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Visual characters for rendering
const (
	BodyChar   = '█'
	EyeChar    = '●'
	LegChar1   = '╱'
	LegChar2   = '╲'
	GroundChar = '═'
	DirtChar   = '·'
)

type sprite struct {
	fill  rune
	color core.Color
}

var sprites = map[Kind]sprite{
	KindCactusSmall: {'▓', core.ColorGreen},
	KindCactusLarge: {'▓', core.ColorBrightGreen},
	KindRock:        {'▒', core.ColorGray},
	KindSpike:       {'▲', core.ColorWhite},
	KindBird:        {'v', core.ColorBrightYellow},
	KindBat:         {'w', core.ColorMagenta},
}

// Render draws the world below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := core.NewViewport(g.cfg.Canvas.Width, g.cfg.Canvas.Height, 0, 1, dst.Width(), dst.Height()-1)

	groundRow := vp.Row(g.player.GroundY() + g.player.H)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorYellow)
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := (y + g.frame/4) % 3; x < dst.Width(); x += 3 {
			dst.SetColored(x, y, DirtChar, core.ColorGray)
		}
	}

	for _, o := range g.obstacles {
		s := sprites[o.Kind]
		dst.DrawRect(vp.CellRect(core.NewAABB(o.X, o.Y, o.W, o.H)), s.fill, s.color)
	}

	g.drawPlayer(dst, vp)
	g.drawHUD(dst)

	switch g.phase.Phase() {
	case core.PhaseStart:
		dst.DrawMessageBox("ENDLESS RUNNER",
			"Space: hop   Up/W: high jump",
			"Press Space or Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		lines := []string{fmt.Sprintf("Score: %d", g.sink.Display())}
		if g.newRecord {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "Press R to restart")
		dst.DrawMessageBox("GAME OVER", lines...)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	p := g.player
	r := vp.CellRect(core.NewAABB(p.X, p.Y, p.W, p.H))
	dst.DrawRect(r, BodyChar, core.ColorBrightRed)
	dst.SetColored(r.Right()-1, r.Y, EyeChar, core.ColorBrightWhite)

	// Legs alternate while running and tuck in the air.
	legY := r.Bottom()
	switch {
	case p.Airborne:
		dst.SetColored(r.X, legY-1, LegChar2, core.ColorRed)
	case (g.frame/6)%2 == 0:
		dst.SetColored(r.X, legY, LegChar1, core.ColorRed)
		dst.SetColored(r.Right()-1, legY, LegChar2, core.ColorRed)
	default:
		dst.SetColored(r.X, legY, LegChar2, core.ColorRed)
		dst.SetColored(r.Right()-1, legY, LegChar1, core.ColorRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", g.sink.Display(), int(g.sink.Best()))
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	if g.difficulty.IsEnabled() {
		right := fmt.Sprintf(" Spd: %.1f  Lv %d ", g.speed, g.level)
		dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorCyan)
	}
}
