package breakout

import "math"

// Snapshot contains the complete simulation state in primitive types.
// Used to compare runs for determinism.
type Snapshot struct {
	Frame  int
	Phase  int
	Score  float64
	Lives  int
	Level  int
	Paddle float64

	BallX, BallY   float64
	BallVX, BallVY float64

	// One entry per brick in row-major order, 1 = alive
	Bricks []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]int, len(g.grid.Bricks))
	for i := range g.grid.Bricks {
		if g.grid.Bricks[i].Alive {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Frame:  g.frame,
		Phase:  int(g.phase.Phase()),
		Score:  g.sink.Current(),
		Lives:  g.lives,
		Level:  g.level,
		Paddle: g.paddle.X,
		BallX:  g.ball.X,
		BallY:  g.ball.Y,
		BallVX: g.ball.VX,
		BallVY: g.ball.VY,
		Bricks: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame) //#nosec G115 -- hash computation
	for _, v := range []int{snap.Phase, snap.Lives, snap.Level} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{snap.Score, snap.Paddle, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, v := range snap.Bricks {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
