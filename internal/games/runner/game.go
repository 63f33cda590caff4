// Package runner implements a side-scrolling endless runner.
// The player jumps over ground obstacles and keeps low under air obstacles
// while the world speeds up with the score.
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/score"
)

// GameID is the registry and score-key identifier.
const GameID = "runner"

func init() {
	registry.Register(GameID, "Endless Runner", func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game implements the runner logic. Each Game is one independent session;
// nothing is shared between instances.
type Game struct {
	cfg        config.RunnerConfig
	cues       core.CuePlayer
	logger     *log.Logger
	sink       *score.Sink
	difficulty *config.DifficultyManager

	phase     core.PhaseMachine
	player    *Player
	spawner   *Spawner
	obstacles []Obstacle
	speed     float64
	level     int
	frame     int
	newRecord bool

	runtime core.RuntimeConfig
}

// New loads the runner config named by svc.Options and creates a game.
// An unreadable or invalid config is logged and replaced by the defaults.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	cfg, err := config.LoadRunner(svc.Options.ConfigPath)
	if err != nil {
		svc.Logger.Warn("using default runner config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}
	if svc.Options.Preset != "" {
		config.ApplyRunnerPreset(&cfg, svc.Options.Preset)
	}
	return NewWithConfig(cfg, svc)
}

// NewWithConfig creates a game from an already validated config.
func NewWithConfig(cfg config.RunnerConfig, svc registry.Services) *Game {
	svc = svc.WithDefaults()
	logger := svc.Logger.WithPrefix(GameID)
	g := &Game{
		cfg:        cfg,
		cues:       svc.Cues,
		logger:     logger,
		sink:       score.New(GameID, svc.Scores, logger),
		difficulty: config.NewDifficultyManager(cfg),
		player:     NewPlayer(cfg),
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
	return "Endless Runner"
}

// Reset returns to the start screen with a spawner seeded from runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.spawner = NewSpawner(g.cfg, runtime.Seed)
	g.resetRun()
	g.phase.Reset()
}

func (g *Game) resetRun() {
	g.player.Reset()
	g.spawner.Reset()
	g.obstacles = g.obstacles[:0]
	g.sink.Reset()
	g.speed = g.difficulty.Speed(0)
	g.level = 0
	g.frame = 0
	g.newRecord = false
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

	if in.JumpPressed() && g.player.BeginJump(in.JumpPressedAt) {
		g.cues.Play(core.CueJump)
	}
	if in.JumpReleased() {
		g.player.EndJump(in.JumpReleasedAt)
	}

	events = g.update(events)
	return g.result(events)
}

// update runs one simulation tick in a fixed order: player physics,
// spawning, scrolling, collision, per-frame score and difficulty.
func (g *Game) update(events []core.Event) []core.Event {
	g.frame++
	g.player.Update()

	if o, ok := g.spawner.Tick(); ok {
		g.obstacles = append(g.obstacles, o)
	}

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Update(g.speed)
		if o.OffScreen() {
			g.sink.AddPoints(g.cfg.Scoring.PerObstacle)
			g.cues.Play(core.CueScore)
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept

	hitbox := g.player.Bounds()
	for _, o := range g.obstacles {
		if hitbox.Intersects(o.Bounds()) {
			return append(events, g.endRun(o))
		}
	}

	g.sink.AddPoints(g.cfg.Scoring.PerFrame)

	current := g.sink.Current()
	g.speed = g.difficulty.Speed(current)
	if level := g.difficulty.Level(current); level != g.level {
		g.level = level
		g.spawner.ApplyTier(g.difficulty.Spawn(current))
		g.logger.Debug("difficulty tier", "level", level, "score", g.sink.Display())
	}
	return events
}

func (g *Game) endRun(hit Obstacle) core.Event {
	g.phase.End()
	g.newRecord = g.sink.SaveHighScore()
	g.cues.Play(core.CueGameOver)
	g.logger.Debug("run over",
		"score", g.sink.Display(),
		"obstacle", hit.Kind,
		"frames", g.frame,
		"record", g.newRecord)
	return core.Event{
		Kind:      core.EventGameOver,
		Score:     g.sink.Current(),
		NewRecord: g.newRecord,
	}
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
		Level:     g.level,
	}
}

// Player exposes the runner character.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns a copy of the live obstacles.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}

// Speed returns the current scroll speed in world units per frame.
func (g *Game) Speed() float64 {
	return g.speed
}

// Spawner exposes the obstacle spawner.
func (g *Game) Spawner() *Spawner {
	return g.spawner
}
