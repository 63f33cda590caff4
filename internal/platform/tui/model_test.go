package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/audio"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// scriptedGame replays queued step results and remembers what it saw.
type scriptedGame struct {
	resets  int
	steps   int
	jumps   int
	lefts   int
	script  []core.StepResult
	pointer int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.JumpPressed() {
		g.jumps++
	}
	if in.Has(core.ActionLeft) {
		g.lefts++
	}
	g.pointer = -1
	if in.PointerActive {
		g.pointer = in.Pointer
	}
	if len(g.script) == 0 {
		return core.StepResult{}
	}
	r := g.script[0]
	g.script = g.script[1:]
	return r
}

func (g *scriptedGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "SCRIPTED")
}

func (g *scriptedGame) State() core.GameState { return core.GameState{} }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(game *scriptedGame, host Host) Model {
	m := NewModel(game, host, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	clock := time.Unix(1000, 0)
	m.now = func() time.Time { return clock }
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestModelTickRecordsRun(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{script: []core.StepResult{
		{},
		{Events: []core.Event{{Kind: core.EventGameOver, Score: 42.7, NewRecord: true}}},
		{},
	}}
	m := newTestModel(game, Host{Store: store})

	for range 3 {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should always be rescheduled")
		}
	}

	runs, err := store.TopRuns(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	if runs[0].Score != 42.7 || !runs[0].NewRecord {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestModelTickWithoutStore(t *testing.T) {
	game := &scriptedGame{script: []core.StepResult{
		{Events: []core.Event{{Kind: core.EventGameOver, Score: 10}}},
	}}
	m := newTestModel(game, Host{})
	update(t, m, TickMsg(time.Now()))
	if game.steps != 1 {
		t.Errorf("steps = %d", game.steps)
	}
}

func TestModelInputReachesGame(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(game, Host{})

	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg(time.Now()))
	if game.jumps != 1 {
		t.Errorf("jumps = %d, expected 1", game.jumps)
	}

	// The jump is a one-frame event, left is held across frames.
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))
	if game.jumps != 1 || game.lefts != 2 {
		t.Errorf("jumps = %d, lefts = %d", game.jumps, game.lefts)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 33, Action: tea.MouseActionMotion})
	update(t, m, TickMsg(time.Now()))
	if game.pointer != 33 {
		t.Errorf("pointer = %d, expected 33", game.pointer)
	}
}

func TestModelMutePersists(t *testing.T) {
	store := openStore(t)
	cues := &audio.Recorder{}
	m := newTestModel(&scriptedGame{}, Host{Store: store, Audio: cues})

	m, _ = update(t, m, runeKey('m'))
	if !cues.Muted() || !store.Muted() {
		t.Errorf("muted: player %v, store %v", cues.Muted(), store.Muted())
	}
	if !strings.Contains(m.View(), "[muted]") {
		t.Error("view should show the muted tag")
	}

	update(t, m, runeKey('m'))
	if cues.Muted() || store.Muted() {
		t.Error("second toggle should unmute")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(game, Host{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != 1 {
		t.Errorf("resets = %d, resize should not restart the game", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show a notice")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{}, Host{})

	back, cmd := update(t, m, runeKey('b'))
	if !back.WentBack() || cmd == nil {
		t.Error("b should return to the menu")
	}
	if back.View() != "" {
		t.Error("view should be empty after leaving")
	}

	quit, cmd := update(t, m, runeKey('q'))
	if quit.WentBack() || cmd == nil {
		t.Error("q should quit without going back")
	}
}

func TestModelShowsHelpOnStartScreen(t *testing.T) {
	game := &scriptedGame{script: []core.StepResult{
		{State: core.GameState{Phase: core.PhasePlaying}},
	}}
	m := newTestModel(game, Host{})

	if !strings.Contains(m.View(), "space hop") {
		t.Error("start screen should show key help")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if strings.Contains(m.View(), "space hop") {
		t.Error("key help should hide while playing")
	}
}
