package core

import "testing"

func TestPhaseMachineLifecycle(t *testing.T) {
	var m PhaseMachine

	if m.Phase() != PhaseStart || m.CanUpdate() {
		t.Fatal("machine should begin at START and not update")
	}
	if m.End() {
		t.Error("START -> GAME_OVER must be rejected")
	}
	if !m.Start() || !m.CanUpdate() {
		t.Fatal("START -> PLAYING failed")
	}
	if !m.TogglePause() || m.Phase() != PhasePaused || m.CanUpdate() {
		t.Fatal("PLAYING -> PAUSED failed")
	}
	if m.End() {
		t.Error("PAUSED -> GAME_OVER must be rejected")
	}
	if !m.TogglePause() || m.Phase() != PhasePlaying {
		t.Fatal("PAUSED -> PLAYING failed")
	}
	if !m.End() || m.Phase() != PhaseGameOver {
		t.Fatal("PLAYING -> GAME_OVER failed")
	}
	if m.TogglePause() || m.Phase() != PhaseGameOver {
		t.Error("GAME_OVER is terminal for pause")
	}
	if m.Start() {
		t.Error("GAME_OVER -> START must be rejected")
	}
	if !m.Restart() || m.Phase() != PhasePlaying {
		t.Fatal("GAME_OVER -> PLAYING restart failed")
	}
}

func TestPhaseMachineRejectsRestartWhilePlaying(t *testing.T) {
	var m PhaseMachine
	m.Start()

	if m.Restart() {
		t.Error("restart is only legal from GAME_OVER")
	}
	m.Reset()
	if m.Phase() != PhaseStart {
		t.Errorf("Reset() phase = %v", m.Phase())
	}
}
