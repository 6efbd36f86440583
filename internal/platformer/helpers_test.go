package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

const testTile = 16

// testConfig returns defaults at a 16-unit tile, small enough for the
// stomp rule's half-tile margin to show up in hand-sized scenarios.
func testConfig() config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	cfg.World.TileSize = testTile
	cfg.Bullets.Speed = 600
	return cfg
}

// gridFrom builds a grid from rows of runes:
// '.' empty, '#' solid, '>' conveyor right, '<' conveyor left, '=' one-way.
func gridFrom(rows ...string) *TileGrid {
	g := NewTileGrid(len(rows[0]), len(rows), testTile)
	for y, row := range rows {
		for x, r := range row {
			switch r {
			case '#':
				g.SetTile(x, y, TileSolid)
			case '>':
				g.SetTile(x, y, TileConveyorRight)
			case '<':
				g.SetTile(x, y, TileConveyorLeft)
			case '=':
				g.SetTile(x, y, TileOneWay)
			}
		}
	}
	return g
}

func emptyGrid(width, height int) *TileGrid {
	return NewTileGrid(width, height, testTile)
}

func newTestWorld(t *testing.T, grid *TileGrid) *World {
	t.Helper()
	return NewWorld(grid, testConfig())
}

func mustSpawn(t *testing.T, w *World, kind string, x, y float64, props Properties) *Entity {
	t.Helper()
	e, err := w.Spawn(SpawnDesc{Kind: kind, X: x, Y: y, Properties: props})
	if err != nil {
		t.Fatalf("Spawn(%s) error: %v", kind, err)
	}
	return e
}

func tickN(w *World, n int, in Input) {
	for i := 0; i < n; i++ {
		w.Tick(in)
	}
}

func hasEvent(res StepResult, kind EventKind) bool {
	for _, ev := range res.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// checkIndex verifies every listed entity sits in exactly one bucket, the one
// matching its position.
func checkIndex(t *testing.T, w *World) {
	t.Helper()
	idx := w.Index()
	for _, e := range w.Entities() {
		cx, cy := idx.SlotFor(e)
		if cx != e.XSlot || cy != e.YSlot {
			t.Errorf("entity %d slot = (%d, %d), expected (%d, %d)", e.ID, e.XSlot, e.YSlot, cx, cy)
		}
		found := 0
		for y := 0; y < w.Grid().Height(); y++ {
			for x := 0; x < w.Grid().Width(); x++ {
				for _, other := range idx.Bucket(x, y) {
					if other != e {
						continue
					}
					found++
					if x != cx || y != cy {
						t.Errorf("entity %d found in bucket (%d, %d), expected (%d, %d)", e.ID, x, y, cx, cy)
					}
				}
			}
		}
		if found != 1 {
			t.Errorf("entity %d indexed %d times, expected 1", e.ID, found)
		}
	}
	if idx.Len() != len(w.Entities()) {
		t.Errorf("index Len() = %d, expected %d", idx.Len(), len(w.Entities()))
	}
}
