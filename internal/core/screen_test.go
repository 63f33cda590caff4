package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	s.Set(3, 3, 'Y')
	if s.Get(3, 3) != 'Y' || s.GetCell(3, 3).Color != ColorDefault {
		t.Errorf("Set should store the default color")
	}

	// Out of bounds writes are ignored and reads return a blank.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(0, 0, 5, 5), '#', ColorGreen)
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear() left content: %q", s.String())
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear() should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(2, 1, "Hello", ColorCyan)

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(6, 1).Color != ColorCyan {
		t.Error("text color not applied")
	}

	// Clipped at the right edge without panicking.
	s.DrawText(18, 0, "abc")
	if s.Get(18, 0) != 'a' || s.Get(19, 0) != 'b' {
		t.Errorf("clipped text = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorWhite)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(40, 12)
	s.DrawMessageBox("GAME OVER", "Score: 42")

	out := s.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 42") {
		t.Errorf("message box missing text:\n%s", out)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(7)) != 20 {
		t.Errorf("Row length = %d, expected 20", len(s.Row(7)))
	}
}
