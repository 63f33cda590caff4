package score

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSinkAccumulates(t *testing.T) {
	s := New("runner", NewMemoryStore(), quietLogger())

	for i := 0; i < 10; i++ {
		s.AddPoints(0.1)
	}
	s.AddPoints(10)
	s.AddPoints(-5) // ignored

	if got := s.Current(); got < 10.99 || got > 11.01 {
		t.Errorf("Current() = %v, expected ~11", got)
	}
}

func TestSinkDisplayFloors(t *testing.T) {
	s := New("runner", nil, quietLogger())
	s.AddPoints(41.9)
	if s.Display() != 41 {
		t.Errorf("Display() = %d, expected 41", s.Display())
	}
}

func TestSaveHighScore(t *testing.T) {
	tests := []struct {
		name       string
		stored     float64
		hasStored  bool
		current    float64
		wantRecord bool
		wantBest   float64
	}{
		{"first run with points", 0, false, 50, true, 50},
		{"first run without points", 0, false, 0, false, 0},
		{"beats best", 100, true, 150, true, 150},
		{"equal is not a record", 100, true, 100, false, 100},
		{"below best", 100, true, 40, false, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			if tc.hasStored {
				_ = store.Save(Key("breakout"), tc.stored)
			}
			s := New("breakout", store, quietLogger())
			s.AddPoints(tc.current)

			if got := s.SaveHighScore(); got != tc.wantRecord {
				t.Errorf("SaveHighScore() = %v, expected %v", got, tc.wantRecord)
			}
			if s.Best() != tc.wantBest {
				t.Errorf("Best() = %v, expected %v", s.Best(), tc.wantBest)
			}
			persisted, _, _ := store.Load(Key("breakout"))
			if persisted != tc.wantBest {
				t.Errorf("persisted best = %v, expected %v", persisted, tc.wantBest)
			}
		})
	}
}

func TestSinkKeysAreIsolated(t *testing.T) {
	store := NewMemoryStore()

	runner := New("runner", store, quietLogger())
	runner.AddPoints(300)
	runner.SaveHighScore()

	breakout := New("breakout", store, quietLogger())
	if breakout.Best() != 0 {
		t.Errorf("breakout best = %v, expected 0", breakout.Best())
	}

	again := New("runner", store, quietLogger())
	if again.Best() != 300 {
		t.Errorf("runner best = %v, expected 300", again.Best())
	}
}

func TestSinkResetKeepsBest(t *testing.T) {
	s := New("runner", NewMemoryStore(), quietLogger())
	s.AddPoints(20)
	s.SaveHighScore()
	s.Reset()

	if s.Current() != 0 {
		t.Errorf("Current() after Reset = %v", s.Current())
	}
	if s.Best() != 20 {
		t.Errorf("Best() after Reset = %v", s.Best())
	}
}

func TestSinkStorageFailureIsBestEffort(t *testing.T) {
	store := NewMemoryStore()
	store.Err = errors.New("disk on fire")

	s := New("runner", store, quietLogger())
	if s.Best() != 0 {
		t.Errorf("failed load should leave best at 0, got %v", s.Best())
	}

	s.AddPoints(12)
	if !s.SaveHighScore() {
		t.Error("a failing store must not hide the new record")
	}
	if s.Best() != 12 {
		t.Errorf("in-memory best = %v, expected 12", s.Best())
	}
}

func TestKey(t *testing.T) {
	if Key("runner") != "runner_highScore" {
		t.Errorf("Key() = %q", Key("runner"))
	}
}
