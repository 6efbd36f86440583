package platformer

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Properties are per-spawn overrides from level data. Physics keys (gravity,
// maxdx, maxdy, impulse) are in tiles; accel and friction are the seconds
// needed to reach or lose maxdx; dx and dy are world units/s.
type Properties map[string]any

// Float returns a numeric property. Numeric strings are accepted since some
// editors store every property as text.
func (p Properties) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool returns a boolean property, false when absent.
func (p Properties) Bool(key string) bool {
	switch b := p[key].(type) {
	case bool:
		return b
	case string:
		v, _ := strconv.ParseBool(b)
		return v
	default:
		return false
	}
}

// SpawnDesc describes one entity placed in a level.
type SpawnDesc struct {
	Kind       string
	X, Y       float64
	Width      float64 // 0 means one tile
	Height     float64 // 0 means one tile
	Properties Properties
}

// LevelData is a decoded level: a tile matrix and its spawns.
type LevelData struct {
	ID       string
	Name     string
	Width    int
	Height   int
	TileSize float64 // 0 means the configured default
	Tiles    []TileCode
	Entities []SpawnDesc
}

// Validate checks the structural rules a level must satisfy before a world
// can be built from it.
func (l *LevelData) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, l.Width, l.Height)
	}
	if l.TileSize < 0 {
		return fmt.Errorf("%w: tile size %v", ErrInvalidSize, l.TileSize)
	}
	if len(l.Tiles) != l.Width*l.Height {
		return fmt.Errorf("%w: got %d tiles, expected %d (%dx%d)",
			ErrDimensionMismatch, len(l.Tiles), l.Width*l.Height, l.Width, l.Height)
	}

	players := 0
	for i, desc := range l.Entities {
		kind, err := ParseKind(desc.Kind)
		if err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
		if kind == KindPlayer {
			players++
		}
	}
	switch {
	case players == 0:
		return ErrNoPlayer
	case players > 1:
		return fmt.Errorf("%w: found %d", ErrMultiplePlayers, players)
	}
	return nil
}

// Grid builds the tile grid described by the level.
func (l *LevelData) Grid(tileSize float64) *TileGrid {
	g := NewTileGrid(l.Width, l.Height, tileSize)
	for i, code := range l.Tiles {
		g.SetTile(i%l.Width, i/l.Width, code)
	}
	return g
}

// ResolveParams turns spawn properties and global defaults into world-unit
// motion parameters for an entity of the given kind.
func ResolveParams(kind Kind, props Properties, phys config.PhysicsConfig, tileSize float64) Params {
	value := func(key string, def float64) float64 {
		if v, ok := props.Float(key); ok {
			return v
		}
		return def
	}
	seconds := func(key string, def float64) float64 {
		if v, ok := props.Float(key); ok && v > 0 {
			return v
		}
		return def
	}
	perSecond := func(speed, secs float64) float64 {
		if secs <= 0 {
			return 0
		}
		return speed / secs
	}

	p := Params{
		Gravity:  tileSize * value("gravity", phys.Gravity),
		MaxDX:    tileSize * value("maxdx", phys.MaxDX),
		MaxDY:    tileSize * value("maxdy", phys.MaxDY),
		Impulse:  tileSize * value("impulse", phys.Impulse),
		Conveyor: tileSize * phys.ConveyorPush,
	}
	p.Accel = perSecond(p.MaxDX, seconds("accel", phys.Accel))
	p.Friction = perSecond(p.MaxDX, seconds("friction", phys.Friction))

	if kind == KindBullet {
		p.Gravity = 0
		p.Friction = 0
		p.Conveyor = 0
	}
	return p
}

// checkTunneling rejects parameters that let an entity cross a whole tile in
// one step, which the tile pass cannot detect.
func checkTunneling(p Params, dt, tileSize float64) error {
	if dt*p.MaxDX >= tileSize || dt*p.MaxDY >= tileSize {
		return fmt.Errorf("%w: dt*maxdx=%.3g dt*maxdy=%.3g tile=%.3g",
			ErrTunneling, dt*p.MaxDX, dt*p.MaxDY, tileSize)
	}
	return nil
}

// BuildWorld validates level and creates a world populated with its spawns.
func BuildWorld(level *LevelData, cfg config.PlatformerConfig, opts ...Option) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	tileSize := level.TileSize
	if tileSize == 0 {
		tileSize = cfg.World.TileSize
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v", ErrInvalidSize, tileSize)
	}

	w := NewWorld(level.Grid(tileSize), cfg, opts...)
	if err := checkTunneling(w.bulletParams(), w.dt, tileSize); err != nil {
		return nil, fmt.Errorf("bullets: %w", err)
	}
	for i, desc := range level.Entities {
		if _, err := w.Spawn(desc); err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, desc.Kind, err)
		}
	}
	w.logger.Debug("world built", "level", level.ID, "entities", len(w.entities),
		"width", level.Width, "height", level.Height, "tile", tileSize)
	return w, nil
}
