package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionConfirm        // Enter - start a run / confirm selection
	ActionBack           // B - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause
	ActionMute           // M - toggle sound
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state polled by a game once per tick.
//
// Jump is tracked as press/release timestamps instead of a flag so the
// runner can tell a tap from a held jump. A press and release delivered in
// the same frame is a tap.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	JumpPressedAt  time.Time // Non-zero if a jump press began this frame
	JumpReleasedAt time.Time // Non-zero if the jump was released this frame

	// Pointer is the absolute pointer column on screen; only meaningful
	// while PointerActive is set.
	Pointer       int
	PointerActive bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PressJump records the start of a jump.
func (f *InputFrame) PressJump(at time.Time) {
	f.JumpPressedAt = at
}

// ReleaseJump records the end of a jump.
func (f *InputFrame) ReleaseJump(at time.Time) {
	f.JumpReleasedAt = at
}

// JumpPressed reports whether a jump began this frame.
func (f InputFrame) JumpPressed() bool {
	return !f.JumpPressedAt.IsZero()
}

// JumpReleased reports whether a jump ended this frame.
func (f InputFrame) JumpReleased() bool {
	return !f.JumpReleasedAt.IsZero()
}

// SetPointer records an absolute pointer column.
func (f *InputFrame) SetPointer(col int) {
	f.Pointer = col
	f.PointerActive = true
}

// Clear resets the per-frame events. The pointer is sticky: once the mouse
// has been used it stays the paddle's target until cleared explicitly.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.JumpPressedAt = time.Time{}
	f.JumpReleasedAt = time.Time{}
}

// ClearPointer drops pointer control, returning the paddle to key intents.
func (f *InputFrame) ClearPointer() {
	f.PointerActive = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
