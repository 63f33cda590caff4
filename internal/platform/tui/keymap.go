package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// holdWindow is how long a direction stays held after its last key event.
// Terminals report key repeats but never key releases.
const holdWindow = 180 * time.Millisecond

// GameKeyMap defines the key bindings while a game runs.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Hop      key.Binding
	HighJump key.Binding
	Start    key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Mute     key.Binding
	Back     key.Binding
	Quit     key.Binding
	Snapshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hop, k.HighJump, k.Left, k.Right, k.Pause, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hop, k.HighJump, k.Left, k.Right},
		{k.Start, k.Pause, k.Restart, k.Mute},
		{k.Back, k.Quit, k.Snapshot},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Hop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hop"),
		),
		HighJump: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "high jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys  GameKeyMap
	holds *HoldTracker
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys:  DefaultGameKeyMap(),
		holds: NewHoldTracker(holdWindow),
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a single action. Jump keys map to
// ActionNone; they carry timing and are handled by MapKeyToFrame.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Start):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Mute):
		return core.ActionMute
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message received at
// now, and returns the action the host should act on (quit, back, mute).
//
// Space is a tap: press and release land in the same frame, which the
// runner reads as a small hop. Up/w only presses, so the jump stays large.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) core.Action {
	switch {
	case key.Matches(msg, km.keys.Hop):
		frame.PressJump(now)
		frame.ReleaseJump(now)
		return core.ActionNone
	case key.Matches(msg, km.keys.HighJump):
		frame.PressJump(now)
		return core.ActionNone
	}

	action := km.MapKey(msg)
	switch action {
	case core.ActionLeft, core.ActionRight:
		km.holds.Press(action, now)
		frame.ClearPointer()
	case core.ActionNone, core.ActionQuit, core.ActionBack, core.ActionMute:
	default:
		frame.Set(action)
	}
	return action
}

// ApplyHolds marks the directions still held at now.
func (km *KeyMapper) ApplyHolds(now time.Time, frame *core.InputFrame) {
	km.holds.Apply(now, frame)
}

// HoldTracker keeps directional keys down for a short window after their
// last key event. Pressing one direction releases the other.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event for a direction.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = at
}

// Held reports whether a is still considered down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	at, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(at) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Apply sets every held direction on the frame.
func (h *HoldTracker) Apply(now time.Time, frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset releases every direction.
func (h *HoldTracker) Reset() {
	clear(h.last)
}

// MenuKeyMap defines the key bindings of the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Mute       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
