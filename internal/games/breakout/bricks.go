package breakout

import (
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// rowColors cycles top to bottom, matching the points table.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
}

// Brick is a single destructible block.
type Brick struct {
	X, Y     float64
	W, H     float64
	Row, Col int
	Points   float64
	Color    core.Color
	Alive    bool
}

// Bounds returns the brick rectangle.
func (b *Brick) Bounds() core.AABB {
	return core.NewAABB(b.X, b.Y, b.W, b.H)
}

// Grid is the brick wall for one level.
type Grid struct {
	Bricks []Brick
	Rows   int
	Cols   int
}

// NewGrid lays out a full wall centered horizontally on the canvas.
// Higher rows are worth more points.
func NewGrid(cfg config.BreakoutConfig) *Grid {
	bc := cfg.Bricks
	step := bc.Width + bc.Padding
	offsetX := (cfg.Canvas.Width - (float64(bc.Cols)*step - bc.Padding)) / 2

	g := &Grid{
		Bricks: make([]Brick, 0, bc.Rows*bc.Cols),
		Rows:   bc.Rows,
		Cols:   bc.Cols,
	}
	for row := range bc.Rows {
		for col := range bc.Cols {
			g.Bricks = append(g.Bricks, Brick{
				X:      offsetX + float64(col)*step,
				Y:      bc.OffsetTop + float64(row)*(bc.Height+bc.Padding),
				W:      bc.Width,
				H:      bc.Height,
				Row:    row,
				Col:    col,
				Points: bc.RowPoints[row%len(bc.RowPoints)],
				Color:  rowColors[row%len(rowColors)],
				Alive:  true,
			})
		}
	}
	return g
}

// Alive returns the number of bricks still standing.
func (g *Grid) Alive() int {
	n := 0
	for i := range g.Bricks {
		if g.Bricks[i].Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every brick is destroyed.
func (g *Grid) Cleared() bool {
	return g.Alive() == 0
}

// FirstHit returns the first live brick touched by c in row-major order.
func (g *Grid) FirstHit(c core.Circle) (*Brick, bool) {
	for i := range g.Bricks {
		b := &g.Bricks[i]
		if b.Alive && core.CircleIntersectsRect(c, b.Bounds()) {
			return b, true
		}
	}
	return nil, false
}
