package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/audio"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// Minimum terminal size for a playable view.
const (
	minScreenW = 40
	minScreenH = 12
)

// Host bundles the collaborators shared by every screen of the arcade.
// Store may be nil, in which case nothing is persisted.
type Host struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
}

func (h Host) withDefaults() Host {
	if h.Audio == nil {
		h.Audio = &audio.Nop{}
	}
	if h.Logger == nil {
		h.Logger = log.Default()
	}
	return h
}

// Services returns the registry services for a new game run.
func (h Host) Services(opts registry.Options) registry.Services {
	h = h.withDefaults()
	svc := registry.Services{
		Cues:    h.Audio,
		Logger:  h.Logger,
		Options: opts,
	}
	if h.Store != nil {
		svc.Scores = h.Store
	}
	return svc
}

// ToggleMute flips the sound and remembers the choice.
func (h Host) ToggleMute() bool {
	h = h.withDefaults()
	muted := h.Audio.ToggleMute()
	if h.Store != nil {
		if err := h.Store.SetMuted(muted); err != nil {
			h.Logger.Warn("cannot save mute setting", "error", err)
		}
	}
	return muted
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	host       Host
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	back       bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, host Host, cfg core.RuntimeConfig) Model {
	host = host.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		host:       host,
		logger:     host.Logger.With("game", game.ID()),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.MapKeyToFrame(msg, m.now(), &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionMute:
		muted := m.host.ToggleMute()
		m.logger.Debug("mute toggled", "muted", muted)
	}

	return m, nil
}

// handleMouse maps the left button to a timed jump and motion to the
// pointer column.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.PressJump(m.now())
		}
		m.inputFrame.SetPointer(msg.X)
	case tea.MouseActionRelease:
		m.inputFrame.ReleaseJump(m.now())
	case tea.MouseActionMotion:
		m.inputFrame.SetPointer(msg.X)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks. The tick is always rescheduled;
// the game's own phase decides whether anything moves.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyMapper.ApplyHolds(m.now(), &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventGameOver:
			m.recordRun(e)
		case core.EventLevelUp:
			m.logger.Info("level up", "level", e.Level)
		case core.EventLifeLost:
			m.logger.Debug("life lost", "lives", e.Lives)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished run. Failures are logged; the arcade keeps
// running without history.
func (m Model) recordRun(e core.Event) {
	m.logger.Info("run finished", "score", int(e.Score), "record", e.NewRecord)
	if m.host.Store == nil {
		return
	}
	if _, err := m.host.Store.RecordRun(m.game.ID(), e.Score, e.NewRecord); err != nil {
		m.logger.Warn("cannot record run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2-1, "Window too small", core.ColorBrightYellow)
		m.screen.DrawTextCentered(m.screen.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return RenderScreen(m.screen)
	}

	m.game.Render(m.screen)
	if m.gameState.Paused || m.gameState.Phase == core.PhaseStart {
		m.screen.DrawTextCentered(m.screen.Height()-1, helpLine(m.keyMapper.Keys()), core.ColorGray)
	}
	if m.host.Audio.Muted() {
		m.screen.DrawTextColored(m.screen.Width()-8, m.screen.Height()-1, "[muted]", core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// helpLine renders the short key help as plain text for the cell buffer.
func helpLine(keys GameKeyMap) string {
	parts := make([]string, 0, len(keys.ShortHelp()))
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// WentBack reports whether the player left for the menu.
func (m Model) WentBack() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game. It reports
// whether the player asked to return to the menu.
func Run(game registry.Game, host Host, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, host, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer paddle follows the mouse
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.WentBack(), nil
	}
	return false, nil
}
