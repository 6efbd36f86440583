package platformer

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func TestLevelValidate(t *testing.T) {
	tiles := make([]TileCode, 4*3)
	player := SpawnDesc{Kind: "player", X: 16, Y: 16}

	tests := []struct {
		name     string
		level    LevelData
		expected error
	}{
		{
			name:  "valid",
			level: LevelData{Width: 4, Height: 3, Tiles: tiles, Entities: []SpawnDesc{player}},
		},
		{
			name:     "zero width",
			level:    LevelData{Width: 0, Height: 3, Entities: []SpawnDesc{player}},
			expected: ErrInvalidSize,
		},
		{
			name:     "negative tile size",
			level:    LevelData{Width: 4, Height: 3, TileSize: -1, Tiles: tiles, Entities: []SpawnDesc{player}},
			expected: ErrInvalidSize,
		},
		{
			name:     "short tile array",
			level:    LevelData{Width: 4, Height: 3, Tiles: tiles[:11], Entities: []SpawnDesc{player}},
			expected: ErrDimensionMismatch,
		},
		{
			name:     "no player",
			level:    LevelData{Width: 4, Height: 3, Tiles: tiles, Entities: []SpawnDesc{{Kind: "monster"}}},
			expected: ErrNoPlayer,
		},
		{
			name:     "two players",
			level:    LevelData{Width: 4, Height: 3, Tiles: tiles, Entities: []SpawnDesc{player, player}},
			expected: ErrMultiplePlayers,
		},
		{
			name:     "unknown kind",
			level:    LevelData{Width: 4, Height: 3, Tiles: tiles, Entities: []SpawnDesc{player, {Kind: "dragon"}}},
			expected: ErrUnknownKind,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestBuildWorldRejectsBadLevel(t *testing.T) {
	level := demoLevel()
	level.Tiles = level.Tiles[1:]

	w, err := BuildWorld(level, testConfig())
	if w != nil {
		t.Error("BuildWorld() returned a world for a malformed level")
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("BuildWorld() error = %v, expected ErrDimensionMismatch", err)
	}
}

func TestBuildWorldFlagsTunneling(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(level *LevelData, cfg *config.PlatformerConfig)
	}{
		{
			name: "spawn override",
			mutate: func(level *LevelData, _ *config.PlatformerConfig) {
				level.Entities[1].Properties = Properties{"maxdy": 70}
			},
		},
		{
			name: "one tile per tick at the classic 60 tiles/s limit",
			mutate: func(level *LevelData, cfg *config.PlatformerConfig) {
				cfg.World.TileSize = 32
				cfg.Physics.MaxDY = 60
			},
		},
		{
			name: "bullet speed",
			mutate: func(_ *LevelData, cfg *config.PlatformerConfig) {
				cfg.Bullets.Speed = 1000
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := demoLevel()
			cfg := testConfig()
			tc.mutate(level, &cfg)

			if _, err := BuildWorld(level, cfg); !errors.Is(err, ErrTunneling) {
				t.Errorf("BuildWorld() error = %v, expected ErrTunneling", err)
			}
		})
	}
}

func TestBuildWorldUsesLevelTileSize(t *testing.T) {
	level := demoLevel()
	level.TileSize = 20
	cfg := testConfig()
	cfg.Bullets.Speed = 600

	w, err := BuildWorld(level, cfg)
	if err != nil {
		t.Fatalf("BuildWorld() error: %v", err)
	}
	if w.Grid().TileSize() != 20 {
		t.Errorf("TileSize() = %v, expected 20", w.Grid().TileSize())
	}
	if p := w.Player(); p.W != 20 || p.H != 20 {
		t.Errorf("player size = %vx%v, expected one tile", p.W, p.H)
	}
}

func TestResolveParams(t *testing.T) {
	phys := testConfig().Physics

	p := ResolveParams(KindMonster, nil, phys, 10)
	if p.Gravity != 10*phys.Gravity || p.MaxDX != 10*phys.MaxDX || p.MaxDY != 10*phys.MaxDY {
		t.Errorf("defaults not scaled by tile size: %+v", p)
	}
	if p.Accel != p.MaxDX/phys.Accel || p.Friction != p.MaxDX/phys.Friction {
		t.Errorf("accel/friction = %v/%v, expected maxdx over the time constants", p.Accel, p.Friction)
	}

	o := ResolveParams(KindMonster, Properties{
		"gravity":  0,
		"maxdx":    "4",
		"accel":    2.0,
		"friction": 0, // ignored, time constants must be positive
	}, phys, 10)
	if o.Gravity != 0 {
		t.Errorf("Gravity = %v, expected explicit 0 honoured", o.Gravity)
	}
	if o.MaxDX != 40 {
		t.Errorf("MaxDX = %v, expected 40", o.MaxDX)
	}
	if o.Accel != 20 {
		t.Errorf("Accel = %v, expected 20", o.Accel)
	}
	if o.Friction != 40/phys.Friction {
		t.Errorf("Friction = %v, expected default time constant", o.Friction)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindPlayer, KindMonster, KindBullet, KindTreasure} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, expected %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("ghost"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(ghost) error = %v, expected ErrUnknownKind", err)
	}
}

func TestTileGridBounds(t *testing.T) {
	g := NewTileGrid(3, 2, testTile)
	g.SetTile(1, 1, TileSolid3)
	g.SetTile(5, 5, TileSolid)
	g.SetTile(-1, 0, TileSolid)

	if g.TileAt(1, 1) != TileSolid3 {
		t.Errorf("TileAt(1, 1) = %v, expected %v", g.TileAt(1, 1), TileSolid3)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if got := g.TileAt(c[0], c[1]); got != TileEmpty {
			t.Errorf("TileAt(%d, %d) = %v, expected empty", c[0], c[1], got)
		}
	}
	if g.TileAtPoint(20, 31) != TileSolid3 {
		t.Errorf("TileAtPoint(20, 31) = %v, expected %v", g.TileAtPoint(20, 31), TileSolid3)
	}

	cells := g.Cells()
	cells[4] = TileEmpty
	if g.TileAt(1, 1) != TileSolid3 {
		t.Error("Cells() aliases the grid")
	}

	if IsSolid(TileEmpty) || !IsSolid(TileOneWay) || !IsSolid(TileCode(42)) {
		t.Error("IsSolid() must be code != empty")
	}
	if blocksUp(TileOneWay) || blocksSide(TileOneWay) || !blocksDown(TileOneWay) {
		t.Error("one-way tiles must only block downward")
	}
}
