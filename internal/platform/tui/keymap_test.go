package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"m", runeKey('m'), core.ActionMute},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"space is not an action", spaceKey, core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestJumpKeys(t *testing.T) {
	now := time.Unix(100, 0)

	tests := []struct {
		name        string
		msg         tea.KeyMsg
		wantRelease bool
	}{
		{"space taps", spaceKey, true},
		{"up presses", tea.KeyMsg{Type: tea.KeyUp}, false},
		{"w presses", runeKey('w'), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			km := NewKeyMapper()
			frame := core.NewInputFrame()
			if got := km.MapKeyToFrame(tc.msg, now, &frame); got != core.ActionNone {
				t.Errorf("action = %v, jump keys are not host actions", got)
			}
			if !frame.JumpPressed() || !frame.JumpPressedAt.Equal(now) {
				t.Errorf("press = %v, expected %v", frame.JumpPressedAt, now)
			}
			if frame.JumpReleased() != tc.wantRelease {
				t.Errorf("released = %v, expected %v", frame.JumpReleased(), tc.wantRelease)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	now := time.Unix(100, 0)
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	frame.SetPointer(30)

	km.MapKeyToFrame(runeKey('a'), now, &frame)
	if frame.PointerActive {
		t.Error("a direction key should take the paddle back from the pointer")
	}
	if frame.Has(core.ActionLeft) {
		t.Error("directions are applied by ApplyHolds, not on the key event")
	}
	km.ApplyHolds(now, &frame)
	if !frame.Has(core.ActionLeft) {
		t.Error("left should be held")
	}

	for _, msg := range []tea.KeyMsg{runeKey('m'), runeKey('q'), runeKey('b')} {
		frame.Clear()
		km.MapKeyToFrame(msg, now, &frame)
		if len(frame.Actions) != 0 {
			t.Errorf("%q leaked into the game frame: %v", msg.String(), frame.Actions)
		}
	}

	frame.Clear()
	km.MapKeyToFrame(runeKey('r'), now, &frame)
	if !frame.Has(core.ActionRestart) {
		t.Error("restart should reach the game")
	}
}

func TestHoldTracker(t *testing.T) {
	t0 := time.Unix(100, 0)

	t.Run("expires after window", func(t *testing.T) {
		h := NewHoldTracker(holdWindow)
		h.Press(core.ActionLeft, t0)
		if !h.Held(core.ActionLeft, t0.Add(holdWindow)) {
			t.Error("left should be held at the edge of the window")
		}
		if h.Held(core.ActionLeft, t0.Add(holdWindow+time.Millisecond)) {
			t.Error("left should be released after the window")
		}
	})

	t.Run("repeat extends", func(t *testing.T) {
		h := NewHoldTracker(holdWindow)
		h.Press(core.ActionRight, t0)
		h.Press(core.ActionRight, t0.Add(150*time.Millisecond))
		if !h.Held(core.ActionRight, t0.Add(300*time.Millisecond)) {
			t.Error("key repeat should keep right held")
		}
	})

	t.Run("opposite releases", func(t *testing.T) {
		h := NewHoldTracker(holdWindow)
		h.Press(core.ActionLeft, t0)
		h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

		frame := core.NewInputFrame()
		h.Apply(t0.Add(20*time.Millisecond), &frame)
		if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
			t.Errorf("actions = %v, expected only right", frame.Actions)
		}
	})

	t.Run("reset", func(t *testing.T) {
		h := NewHoldTracker(holdWindow)
		h.Press(core.ActionLeft, t0)
		h.Reset()
		if h.Held(core.ActionLeft, t0) {
			t.Error("reset should release every direction")
		}
	})
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := frameInterval(tc.rate); got != tc.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
