// Package breakout implements a classic brick breaker.
// The player moves a paddle to keep a ball in play and clear a wall of
// bricks; clearing the wall starts the next level with a bonus.
package breakout

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/score"
)

// GameID is the registry and score-key identifier.
const GameID = "breakout"

func init() {
	registry.Register(GameID, "Breakout", func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game implements the Breakout game logic.
type Game struct {
	cfg    config.BreakoutConfig
	cues   core.CuePlayer
	logger *log.Logger
	sink   *score.Sink
	rng    *rand.Rand

	phase  core.PhaseMachine
	paddle *Paddle
	ball   Ball
	grid   *Grid

	lives     int
	level     int
	frame     int
	newRecord bool

	runtime core.RuntimeConfig
	view    core.Viewport
}

// New loads the Breakout config named by svc.Options and creates a game.
// An unreadable or invalid config is logged and replaced by the defaults.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	cfg, err := config.LoadBreakout(svc.Options.ConfigPath)
	if err != nil {
		svc.Logger.Warn("using default breakout config", "error", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if svc.Options.Preset != "" {
		config.ApplyBreakoutPreset(&cfg, svc.Options.Preset)
	}
	return NewWithConfig(cfg, svc)
}

// NewWithConfig creates a game from an already validated config.
func NewWithConfig(cfg config.BreakoutConfig, svc registry.Services) *Game {
	svc = svc.WithDefaults()
	logger := svc.Logger.WithPrefix(GameID)
	g := &Game{
		cfg:    cfg,
		cues:   svc.Cues,
		logger: logger,
		sink:   score.New(GameID, svc.Scores, logger),
		paddle: NewPaddle(cfg),
		ball:   Ball{R: cfg.Ball.Radius},
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset returns to the start screen. The seed drives the launch angles.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.view = g.viewport(runtime.ScreenW, runtime.ScreenH)
	g.resetRun()
	g.phase.Reset()
}

func (g *Game) resetRun() {
	g.sink.Reset()
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.frame = 0
	g.newRecord = false
	g.paddle.Center()
	g.grid = NewGrid(g.cfg)
	g.resetBall()
}

// resetBall serves from the launch point at a random angle within the
// launch spread.
func (g *Game) resetBall() {
	spread := core.DegToRad(g.cfg.Ball.LaunchSpread)
	angle := (g.rng.Float64() - 0.5) * 2 * spread
	g.ball.Launch(g.cfg.Canvas.Width/2, g.cfg.Canvas.Height-g.cfg.Ball.LaunchOffset, g.cfg.Ball.Speed, angle)
}

// viewport maps the canvas below the one-line HUD.
func (g *Game) viewport(cols, rows int) core.Viewport {
	return core.NewViewport(g.cfg.Canvas.Width, g.cfg.Canvas.Height, 0, 1, cols, rows-1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase.Phase() {
	case core.PhaseStart:
		if in.JumpPressed() || in.Has(core.ActionConfirm) {
			g.phase.Start()
		}
		return g.result(events)
	case core.PhaseGameOver:
		if in.JumpPressed() || in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.resetRun()
			g.phase.Restart()
		}
		return g.result(events)
	}

	if in.Has(core.ActionPause) {
		g.phase.TogglePause()
	}
	if !g.phase.CanUpdate() {
		return g.result(events)
	}

	events = g.update(in, events)
	return g.result(events)
}

// update runs one tick: paddle, ball and walls, miss, paddle bounce,
// one brick, then the level-clear check.
func (g *Game) update(in core.InputFrame, events []core.Event) []core.Event {
	g.frame++

	switch {
	case in.PointerActive:
		g.paddle.MoveTo(g.view.WorldX(in.Pointer))
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.paddle.Move(-1)
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.paddle.Move(1)
	}

	if g.ball.Move(g.cfg.Canvas.Width) {
		g.cues.Play(core.CueBounce)
	}

	if g.ball.Missed(g.cfg.Canvas.Height) {
		return append(events, g.loseLife()...)
	}

	if g.ball.ReflectFromPaddle(g.paddle, core.DegToRad(g.cfg.Ball.BounceSpread)) {
		g.cues.Play(core.CueBounce)
	}

	if brick, ok := g.grid.FirstHit(g.ball.Circle()); ok {
		brick.Alive = false
		g.ball.BounceOffBox(brick.Bounds())
		g.sink.AddPoints(brick.Points)
		g.cues.Play(core.CueBrick)

		if g.grid.Cleared() {
			events = append(events, g.levelUp())
		}
	}
	return events
}

func (g *Game) loseLife() []core.Event {
	g.lives--
	events := []core.Event{{Kind: core.EventLifeLost, Lives: g.lives}}

	if g.lives <= 0 {
		g.phase.End()
		g.newRecord = g.sink.SaveHighScore()
		g.cues.Play(core.CueGameOver)
		g.logger.Debug("run over", "score", g.sink.Display(), "level", g.level, "record", g.newRecord)
		return append(events, core.Event{
			Kind:      core.EventGameOver,
			Score:     g.sink.Current(),
			NewRecord: g.newRecord,
		})
	}

	g.resetBall()
	g.cues.Play(core.CueLifeLost)
	return events
}

func (g *Game) levelUp() core.Event {
	g.level++
	g.resetBall()
	g.grid = NewGrid(g.cfg)
	g.sink.AddPoints(g.cfg.Gameplay.LevelBonus * float64(g.level))
	g.cues.Play(core.CueLevelUp)
	g.logger.Debug("level cleared", "level", g.level, "score", g.sink.Display())
	return core.Event{Kind: core.EventLevelUp, Level: g.level}
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.phase.Phase()
	return core.GameState{
		Score:     g.sink.Current(),
		HighScore: g.sink.Best(),
		Phase:     p,
		GameOver:  p == core.PhaseGameOver,
		Paused:    p == core.PhasePaused,
		Lives:     g.lives,
		Level:     g.level,
	}
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle exposes the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Grid exposes the brick wall.
func (g *Game) Grid() *Grid {
	return g.grid
}
