package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

type stubGame struct {
	svc Services
}

func (g *stubGame) ID() string                          { return "stub" }
func (g *stubGame) Title() string                       { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)            {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                 {}
func (g *stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", "Stub", func(svc Services) Game { return &stubGame{svc: svc} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}
	if title, ok := Title("zz_stub"); !ok || title != "Stub" {
		t.Errorf("Title() = %q, %v", title, ok)
	}

	g, err := Create("zz_stub", Services{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	stub := g.(*stubGame)
	if stub.svc.Cues == nil || stub.svc.Logger == nil {
		t.Error("Create() should fill default services")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Services{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func(Services) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", "Dup", func(Services) Game { return &stubGame{} })
}
