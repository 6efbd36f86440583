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
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '@', ColorYellow)
	cell := s.GetCell(5, 5)
	if cell.Rune != '@' || cell.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' in yellow", cell)
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, 10, 'A')
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %q, expected space", got.Rune)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(2, 0, "HUD✓x", ColorWhite)

	if got := s.String(); got != "  HUD✓x " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(0, 0, 4, 2), '#', ColorBrick)
	s.Resize(3, 3)

	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if strings.Contains(s.String(), "#") {
		t.Error("Resize should clear the buffer")
	}
	if lines := strings.Count(s.String(), "\n"); lines != 2 {
		t.Errorf("expected 3 rows, got %d newlines", lines)
	}
}

func TestTileColorCycles(t *testing.T) {
	if TileColor(0) != ColorYellow {
		t.Errorf("TileColor(0) = %v", TileColor(0))
	}
	if TileColor(5) != TileColor(0) {
		t.Error("TileColor should cycle through the palette")
	}
	if TileColor(-1) != ColorDefault {
		t.Error("negative material should map to default")
	}
}
