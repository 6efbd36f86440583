package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

func testSnapshot() platformer.Snapshot {
	const w, h = 40, 20
	tiles := make([]platformer.TileCode, w*h)
	for x := 0; x < w; x++ {
		tiles[x+(h-1)*w] = platformer.TileSolid
	}
	return platformer.Snapshot{
		TileSize:  10,
		Width:     w,
		Height:    h,
		Tiles:     tiles,
		HasPlayer: true,
		Player:    platformer.PlayerView{Body: platformer.Body{X: 200, Y: 100, W: 10, H: 10}},
	}
}

func TestFollowClampsToLevel(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name     string
		px, py   float64
		expected Camera
	}{
		{"centred", 200, 100, Camera{X: 10, Y: 5}},
		{"top-left corner", 0, 0, Camera{X: 0, Y: 0}},
		{"bottom-right corner", 390, 190, Camera{X: 20, Y: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap.Player.X, snap.Player.Y = tc.px, tc.py
			if got := Follow(&snap, 40, 10); got != tc.expected {
				t.Errorf("Follow() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestFollowWithoutPlayer(t *testing.T) {
	snap := testSnapshot()
	snap.HasPlayer = false
	if got := Follow(&snap, 40, 10); got != (Camera{}) {
		t.Errorf("Follow() = %+v, expected origin", got)
	}
}

func TestScreenToWorld(t *testing.T) {
	cam := Camera{X: 3, Y: 2}
	x, y := cam.ScreenToWorld(4, 1, 10)
	// Column 4 is the left half of the third visible tile.
	if x != 52.5 || y != 35 {
		t.Errorf("ScreenToWorld() = (%v, %v), expected (52.5, 35)", x, y)
	}
}

func TestTileGlyph(t *testing.T) {
	tests := []struct {
		code  platformer.TileCode
		rune  rune
		color core.Color
	}{
		{platformer.TileEmpty, ' ', core.ColorDefault},
		{platformer.TileSolid, '█', core.ColorYellow},
		{platformer.TileSolid2, '█', core.ColorBrick},
		{platformer.TileConveyorRight, '»', core.ColorCyan},
		{platformer.TileConveyorLeft, '«', core.ColorCyan},
		{platformer.TileOneWay, '▔', core.ColorGrey},
	}

	for _, tc := range tests {
		r, c := tileGlyph(tc.code)
		if r != tc.rune || c != tc.color {
			t.Errorf("tileGlyph(%d) = (%q, %d), expected (%q, %d)", tc.code, r, c, tc.rune, tc.color)
		}
	}
}

func TestDrawWorld(t *testing.T) {
	snap := testSnapshot()
	snap.Player.X, snap.Player.Y = 0, 170
	snap.Monsters = []platformer.Body{{X: 50, Y: 180, W: 10, H: 10}}
	snap.Treasure = []platformer.Body{{X: 100, Y: 180, W: 10, H: 10}}

	s := core.NewScreen(40, 12)
	cam := Follow(&snap, s.Width(), 10)
	DrawWorld(s, &snap, cam, 1, 10, 1)

	// The camera is pinned to the bottom of the level, so the floor is the
	// last view row.
	if got := s.Get(0, 10); got != '█' {
		t.Errorf("floor cell = %q, expected █", got)
	}
	if got := s.Get(0, 8); got != '@' {
		t.Errorf("player cell = %q, expected @", got)
	}
	if got := s.Get(10, 9); got != 'M' {
		t.Errorf("monster cell = %q, expected M", got)
	}
	if got := s.GetCell(20, 9); got.Rune != '$' || got.Color != core.ColorGold {
		t.Errorf("treasure cell = %+v, expected bright $", got)
	}

	// Nothing is drawn outside the view rows.
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("HUD row was drawn over: %q", got)
	}
}

func TestDrawWorldDimTreasure(t *testing.T) {
	snap := testSnapshot()
	snap.Treasure = []platformer.Body{{X: 200, Y: 100, W: 10, H: 10}}
	snap.HasPlayer = false

	s := core.NewScreen(40, 20)
	DrawWorld(s, &snap, Camera{X: 10, Y: 5}, 0, 20, 0.2)

	if got := s.GetCell(20, 5); got.Color != core.ColorGoldDim {
		t.Errorf("treasure colour = %d, expected dim", got.Color)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"", "default", "mono", "monochrome"} {
		th, ok := ThemeByName(name)
		if !ok {
			t.Errorf("ThemeByName(%q) not found", name)
			continue
		}
		if _, ok := th.Palette[core.ColorGold]; !ok {
			t.Errorf("theme %q has no treasure colour", name)
		}
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Error("unknown theme should not resolve")
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorGold)
	s.DrawText(2, 0, "cd", core.ColorWhite)
	s.DrawText(0, 1, "xy", core.ColorDefault)

	// Styles only add escape sequences, so the stripped text keeps the layout.
	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "xy") {
		t.Errorf("second line = %q", lines[1])
	}
}
