package core

// Viewport maps a fixed-size world onto a grid of terminal cells.
// The simulation always runs in world units, so gameplay does not depend on
// the terminal size.
type Viewport struct {
	WorldW, WorldH float64
	X, Y           int // Top-left cell of the play area
	Cols, Rows     int // Play area size in cells
}

// NewViewport fits the world into a cols×rows area starting at (x, y).
func NewViewport(worldW, worldH float64, x, y, cols, rows int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		X:      x,
		Y:      y,
		Cols:   Max(cols, 1),
		Rows:   Max(rows, 1),
	}
}

// Col converts a world x coordinate into a screen column.
func (v Viewport) Col(x float64) int {
	return v.X + int(x*float64(v.Cols)/v.WorldW)
}

// Row converts a world y coordinate into a screen row.
func (v Viewport) Row(y float64) int {
	return v.Y + int(y*float64(v.Rows)/v.WorldH)
}

// CellRect converts a world box into screen cells. Non-empty boxes always
// cover at least one cell so small entities stay visible.
func (v Viewport) CellRect(b AABB) Rect {
	x0, y0 := v.Col(b.X), v.Row(b.Y)
	x1, y1 := v.Col(b.Right()), v.Row(b.Bottom())
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// WorldX converts a screen column back into the world x coordinate of the
// column's center.
func (v Viewport) WorldX(col int) float64 {
	return (float64(col-v.X) + 0.5) * v.WorldW / float64(v.Cols)
}
