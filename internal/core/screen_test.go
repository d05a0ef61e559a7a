package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); strings.TrimSpace(row) != "" {
			t.Fatalf("Row(%d) = %q, expected blank", y, row)
		}
	}
}

func TestScreenSetClipped(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetColored(5, 2, '●', ColorBrightYellow)
	if c := s.GetCell(5, 2); c.Rune != '●' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(5, 2) = %+v, expected yellow ●", c)
	}

	// Out of bounds writes are dropped and reads return blank.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'X')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}
	if strings.Contains(s.String(), "X") {
		t.Error("out of bounds Set leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(0, 0, 6, 3), '▒')
	s.DrawTextColored(0, 1, "egg", ColorYellow)

	s.Clear()

	for y := range 3 {
		for x := range 6 {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("GetCell(%d, %d) = %+v after Clear, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "Score")
	if got := s.Row(1)[2:7]; got != "Score" {
		t.Errorf("Row(1)[2:7] = %q, expected Score", got)
	}

	s.DrawText(17, 0, "Lives")
	if got := s.Row(0)[17:]; got != "Liv" {
		t.Errorf("clipped text = %q, expected Liv", got)
	}

	// Multi-byte runes take one cell each.
	s.DrawText(0, 2, "♥♥♡")
	if s.Get(2, 2) != '♡' || s.Get(3, 2) != ' ' {
		t.Errorf("Row(2) = %q, expected ♥♥♡ in three cells", s.Row(2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "PAUSED", ColorBrightWhite)

	x := (20 - 6) / 2
	if got := string([]rune(s.Row(1))[x : x+6]); got != "PAUSED" {
		t.Errorf("centered text = %q at %d, expected PAUSED", got, x)
	}
	if s.GetCell(x, 1).Color != ColorBrightWhite {
		t.Errorf("color = %v, expected ColorBrightWhite", s.GetCell(x, 1).Color)
	}

	s.DrawTextCentered(2, "♥ x3", ColorRed)
	if s.Get(8, 2) != '♥' {
		t.Errorf("Row(2) = %q, expected ♥ centered by runes", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawRect(NewRect(2, 1, 3, 2), '▀')

	want := []string{
		"        ",
		"  ▀▀▀   ",
		"  ▀▀▀   ",
		"        ",
		"        ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "0123456789")
	s.DrawText(0, 3, "bottom")

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if s.Row(0) != "01234" {
		t.Errorf("Row(0) = %q, expected 01234", s.Row(0))
	}

	s.Resize(8, 3)
	if s.Row(0) != "01234   " || s.Row(2) != "        " {
		t.Errorf("grown rows = %q / %q, expected kept prefix and blank tail", s.Row(0), s.Row(2))
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}
