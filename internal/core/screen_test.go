package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("GetCell rune = %q, want 'X'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell color = %v, want ColorRed", cell.Color)
	}

	// Out-of-bounds writes are ignored, reads return a blank cell
	s.SetCell(-1, 0, 'Y', ColorBlue)
	s.SetCell(10, 0, 'Y', ColorBlue)
	s.SetCell(0, 5, 'Y', ColorBlue)

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorWhite)
	s.Clear()

	if got := s.GetCell(1, 1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello", ColorDefault)

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc", ColorDefault)
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() produced %d lines, want 2", len(lines))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetCell(2, 2, '@', ColorBlue)

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("Resize dimensions = %dx%d, want 8x6", s.Width(), s.Height())
	}
	if got := s.GetCell(2, 2); got.Rune != '@' || got.Color != ColorBlue {
		t.Errorf("content not preserved across grow: %+v", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("content not preserved across shrink: %q", got)
	}
}
