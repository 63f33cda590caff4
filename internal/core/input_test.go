package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("empty frame should have no actions")
	}
	f.Set(ActionLeft)
	f.Set(ActionPause)
	if !f.Has(ActionLeft) || !f.Has(ActionPause) || f.Has(ActionRight) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	now := time.Now()
	f.Set(ActionRight)
	f.PressJump(now)
	f.ReleaseJump(now)
	f.SetPointer(12)

	f.Clear()

	if f.Has(ActionRight) || f.JumpPressed() || f.JumpReleased() {
		t.Error("Clear() should drop per-frame events")
	}
	if !f.PointerActive || f.Pointer != 12 {
		t.Error("Clear() should keep the pointer")
	}
	f.ClearPointer()
	if f.PointerActive {
		t.Error("ClearPointer() should deactivate the pointer")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	c := f.Clone()
	c.Set(ActionQuit)

	if f.Has(ActionQuit) {
		t.Error("Clone() must not share the action map")
	}
	if !c.Has(ActionConfirm) {
		t.Error("Clone() lost actions")
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(800, 400, 0, 1, 80, 20)

	if got := v.Col(400); got != 40 {
		t.Errorf("Col(400) = %d, expected 40", got)
	}
	if got := v.Row(200); got != 11 {
		t.Errorf("Row(200) = %d, expected 11", got)
	}
	r := v.CellRect(NewAABB(0, 0, 1, 1))
	if r.W != 1 || r.H != 1 {
		t.Errorf("tiny box should cover one cell, got %+v", r)
	}
	if got := v.WorldX(40); got != 405 {
		t.Errorf("WorldX(40) = %v, expected 405", got)
	}
}
