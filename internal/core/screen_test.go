package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '█', ColorGreen, ColorBlue)
	cell := s.GetCell(3, 4)
	if cell.Rune != '█' || cell.Fg != ColorGreen || cell.Bg != ColorBlue {
		t.Errorf("GetCell(3, 4) = %+v, expected green-on-blue block", cell)
	}

	oob := s.GetCell(-1, 50)
	if oob.Rune != ' ' || oob.Fg != ColorDefault || oob.Bg != ColorDefault {
		t.Errorf("Out of bounds GetCell should be blank, got %+v", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed, ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Fg != ColorDefault || cell.Bg != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'K')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize to 20x5 got %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'K' {
		t.Errorf("Resize should preserve content, got %q at (2, 3)", s.Get(2, 3))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  Hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  Hello")
	}

	// Clipped text must not panic or wrap
	s.DrawText(18, 2, "wide")
	if s.Get(19, 2) != 'i' {
		t.Errorf("Clipped draw: expected 'i' at (19, 2), got %q", s.Get(19, 2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box corners not drawn correctly")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn correctly")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
