package core

import (
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with unstyled spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Style != (Style{}) {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("NewScreen(-3, -1) = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen String() = %q, expected empty", s.String())
	}
}

func TestScreenSetCellGetCell(t *testing.T) {
	s := NewScreen(10, 10)
	cell := Cell{Rune: 'X', Style: Style{}.WithFg(testWhite)}

	s.SetCell(5, 5, cell)
	if got := s.GetCell(5, 5); got != cell {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", got, cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, cell)
	s.SetCell(100, 0, cell)
	s.SetCell(0, -1, cell)
	s.SetCell(0, 100, cell)

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		if got := s.GetCell(p[0], p[1]); got != (Cell{Rune: ' '}) {
			t.Errorf("GetCell(%d, %d) = %+v, expected a blank cell", p[0], p[1], got)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), Style{}.WithBg(testBlack))
	s.SetCell(0, 0, Cell{Rune: 'X'})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Style.BgSet {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	st := Style{}.WithBg(testWhite)
	s.FillRect(NewRect(2, 2, 3, 3), st)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Style != st {
				t.Errorf("FillRect: expected style at (%d, %d)", x, y)
			}
		}
	}

	if s.GetCell(1, 1).Style.BgSet || s.GetCell(5, 5).Style.BgSet {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), Style{})

	// Check corners
	corners := []struct {
		x, y     int
		expected rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := runeAt(s, c.x, c.y); got != c.expected {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.expected)
		}
	}

	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' || runeAt(s, x, 4) != '─' {
			t.Errorf("Horizontal edges should be '─' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' || runeAt(s, 5, y) != '│' {
			t.Errorf("Vertical edges should be '│' at y=%d", y)
		}
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawBox(NewRect(1, 1, 0, 3), Style{})

	if s.String() != "    \n    \n    \n    " {
		t.Errorf("DrawBox with zero width drew %q", s.String())
	}
}

func TestScreenDrawBoxKeepsFill(t *testing.T) {
	s := NewScreen(6, 3)
	fill := Style{}.WithBg(testWhite)
	s.FillRect(NewRect(0, 0, 6, 3), fill)
	s.DrawBox(NewRect(0, 0, 6, 3), Style{}.WithFg(testBlack))

	c := s.GetCell(0, 0)
	if !c.Style.BgSet || c.Style.Bg != testWhite {
		t.Errorf("DrawBox should keep the background of the filled cell, got %+v", c.Style)
	}
	if !c.Style.FgSet || c.Style.Fg != testBlack {
		t.Errorf("DrawBox should set the outline foreground, got %+v", c.Style)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetCell(0, 0, Cell{Rune: 'A'})
	s.SetCell(2, 1, Cell{Rune: '●'})

	result := s.String()
	expected := "A  \n  ●"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}
