package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
	HeartChar  = '♥'
)

// Render draws the game state below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.view = g.viewport(dst.Width(), dst.Height())

	g.renderHUD(dst)
	g.renderBricks(dst)

	dst.DrawRect(g.view.CellRect(g.paddle.Bounds()), PaddleChar, core.ColorBrightCyan)

	if g.phase.Phase() != core.PhaseGameOver {
		dst.SetColored(g.view.Col(g.ball.X), g.view.Row(g.ball.Y), BallChar, core.ColorBrightWhite)
	}

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d  Best: %d", g.sink.Display(), int(g.sink.Best())), core.ColorBrightWhite)

	lives := strings.Repeat(string(HeartChar), core.Max(g.lives, 0))
	dst.DrawTextCentered(0, "Lives: "+lives, core.ColorBrightRed)

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorCyan)
}

// renderBricks draws all alive bricks. Bricks narrower than two cells
// lose their gap so the wall stays readable on small terminals.
func (g *Game) renderBricks(dst *core.Screen) {
	for i := range g.grid.Bricks {
		b := &g.grid.Bricks[i]
		if !b.Alive {
			continue
		}
		r := g.view.CellRect(b.Bounds())
		if r.W > 2 {
			r.W--
		}
		dst.DrawRect(r, BrickChar, b.Color)
	}
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase.Phase() {
	case core.PhaseStart:
		dst.DrawMessageBox("BREAKOUT",
			"Left/Right or mouse to move",
			"Press Space or Enter to start")
	case core.PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		lines := []string{fmt.Sprintf("Score: %d  Level: %d", g.sink.Display(), g.level)}
		if g.newRecord {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "Press R to restart")
		dst.DrawMessageBox("GAME OVER", lines...)
	}
}
