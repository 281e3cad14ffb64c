package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("Expected 80x24, got %dx%d", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Negative sizes should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("Empty screen should render empty, got %q", s.String())
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if runeAt(s, 5, 5) != 'X' {
		t.Errorf("Expected 'X' at (5, 5), got %q", runeAt(s, 5, 5))
	}

	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 10, 'A', ColorRed)

	if strings.ContainsRune(s.String(), 'A') {
		t.Error("Out-of-bounds writes should be ignored")
	}
	if c := s.GetCell(-1, 3); c.Rune != ' ' {
		t.Errorf("Out-of-bounds read should be a space, got %q", c.Rune)
	}
}

func TestScreenSetKeepsColor(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(1, 0, '▒', ColorSand)
	s.Set(1, 0, '#')

	if c := s.GetCell(1, 0); c.Rune != '#' || c.Color != ColorSand {
		t.Errorf("Set should keep the color, got %+v", c)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.Fill('#', ColorSkyNight)
	if got := s.String(); got != "#####\n#####\n#####" {
		t.Errorf("Unexpected fill:\n%s", got)
	}
	if s.GetCell(4, 2).Color != ColorSkyNight {
		t.Error("Fill should set the color")
	}

	s.Clear()
	if got := s.String(); strings.Trim(got, " \n") != "" {
		t.Errorf("Clear should blank the screen, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "CLIMB")
	s.DrawTextColored(0, 1, "☀ 12", ColorYellow)

	if got := strings.Split(s.String(), "\n"); got[0] != "     CLI" || got[1] != "☀ 12    " {
		t.Errorf("Unexpected text rows %q", got)
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawTextColored should color each rune")
	}
	if s.GetCell(5, 0).Color != ColorDefault {
		t.Error("DrawText should not color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(1, 1, 3, 2), '▒', ColorSand)

	want := "      \n ▒▒▒  \n ▒▒▒  \n      "
	if got := s.String(); got != want {
		t.Errorf("Unexpected rect:\n%s", got)
	}

	// Clipped at the edges.
	s.FillRect(NewRect(4, 2, 10, 10), '*', ColorRed)
	if runeAt(s, 5, 3) != '*' || runeAt(s, 3, 3) != ' ' {
		t.Error("FillRect should clip to the screen")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	want := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("Unexpected box:\n%s", got)
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3))

	if strings.Trim(s.String(), " \n") != "" {
		t.Error("Degenerate boxes should draw nothing")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "ABCD")
	s.DrawText(0, 2, "WXYZ")

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Expected 6x2, got %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "ABCD  \n      " {
		t.Errorf("Resize should keep the top-left content, got %q", got)
	}

	s.Resize(2, 2)
	if got := s.String(); got != "AB\n  " {
		t.Errorf("Shrinking should crop, got %q", got)
	}
}
