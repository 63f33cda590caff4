package core

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// PhaseMachine gates the simulation:
//
//	START -> PLAYING <-> PAUSED
//	PLAYING -> GAME_OVER -> (restart) PLAYING
//
// Illegal transitions return false and leave the phase unchanged.
type PhaseMachine struct {
	phase Phase
}

// Phase returns the current phase.
func (m *PhaseMachine) Phase() Phase {
	return m.phase
}

// CanUpdate reports whether entities may advance this tick.
func (m *PhaseMachine) CanUpdate() bool {
	return m.phase == PhasePlaying
}

// Start leaves the start screen.
func (m *PhaseMachine) Start() bool {
	return m.transition(PhaseStart, PhasePlaying)
}

// Pause freezes a running game.
func (m *PhaseMachine) Pause() bool {
	return m.transition(PhasePlaying, PhasePaused)
}

// Resume continues a paused game.
func (m *PhaseMachine) Resume() bool {
	return m.transition(PhasePaused, PhasePlaying)
}

// TogglePause pauses or resumes; it is a no-op in other phases.
func (m *PhaseMachine) TogglePause() bool {
	if m.phase == PhasePaused {
		return m.Resume()
	}
	return m.Pause()
}

// End finishes the run. Only a playing game can end.
func (m *PhaseMachine) End() bool {
	return m.transition(PhasePlaying, PhaseGameOver)
}

// Restart begins a new run after game over.
func (m *PhaseMachine) Restart() bool {
	return m.transition(PhaseGameOver, PhasePlaying)
}

// Reset returns to the start screen unconditionally.
func (m *PhaseMachine) Reset() {
	m.phase = PhaseStart
}

func (m *PhaseMachine) transition(from, to Phase) bool {
	if m.phase != from {
		return false
	}
	m.phase = to
	return true
}
