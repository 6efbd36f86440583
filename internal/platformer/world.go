// Package platformer implements the tile platformer simulation: tile grid,
// motion integration with tile collision, a uniform-grid spatial index and
// the per-tick collision rules between player, monsters, bullets and
// treasure.
package platformer

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// World owns the grid, the entities and the spatial index. It is not safe for
// concurrent use; callers serialize Tick, spawns and snapshots.
type World struct {
	grid     *TileGrid
	index    *SpatialIndex
	entities []*Entity
	player   *Entity

	cfg    config.PlatformerConfig
	dt     float64
	tick   uint64
	nextID int

	logger *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for simulation events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates an empty world over grid. Entities are added with Spawn.
func NewWorld(grid *TileGrid, cfg config.PlatformerConfig, opts ...Option) *World {
	w := &World{
		grid:   grid,
		index:  NewSpatialIndex(grid.Width(), grid.Height(), grid.TileSize()),
		cfg:    cfg,
		dt:     cfg.World.Step(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spawn creates an entity from a level spawn descriptor. A spawn outside the
// grid is returned already Removed, except for the player, which is an error.
func (w *World) Spawn(desc SpawnDesc) (*Entity, error) {
	kind, err := ParseKind(desc.Kind)
	if err != nil {
		return nil, err
	}
	if kind == KindPlayer && w.player != nil {
		return nil, ErrMultiplePlayers
	}

	tile := w.grid.TileSize()
	params := ResolveParams(kind, desc.Properties, w.cfg.Physics, tile)
	if kind != KindTreasure {
		if err := checkTunneling(params, w.dt, tile); err != nil {
			return nil, err
		}
	}

	e := w.newEntity(kind, desc.X, desc.Y, orTile(desc.Width, tile), orTile(desc.Height, tile), params)
	e.Left = desc.Properties.Bool("left")
	e.Right = desc.Properties.Bool("right")
	if dx, ok := desc.Properties.Float("dx"); ok {
		e.DX = core.ClampF(dx, -params.MaxDX, params.MaxDX)
	}
	if dy, ok := desc.Properties.Float("dy"); ok {
		e.DY = core.ClampF(dy, -params.MaxDY, params.MaxDY)
	}

	if !w.insert(e) {
		if kind == KindPlayer {
			return nil, ErrPlayerOutOfBounds
		}
		return e, nil
	}
	if kind == KindPlayer {
		w.player = e
	}
	return e, nil
}

// SpawnBullet adds a projectile at (x, y) moving at (dx, dy), clamped to the
// bullet speed limit. The returned entity is Removed if (x, y) is outside
// the grid.
func (w *World) SpawnBullet(x, y, dx, dy float64) *Entity {
	params := w.bulletParams()
	width, height := w.bulletSize()
	e := w.newEntity(KindBullet, x, y, width, height, params)
	e.DX = core.ClampF(dx, -params.MaxDX, params.MaxDX)
	e.DY = core.ClampF(dy, -params.MaxDY, params.MaxDY)
	w.insert(e)
	return e
}

// FireAt shoots a bullet from the player's center towards (tx, ty) at the
// configured bullet speed. It returns nil when there is no player.
func (w *World) FireAt(tx, ty float64) *Entity {
	p := w.player
	if p == nil {
		return nil
	}
	bw, bh := w.bulletSize()
	cx, cy := p.Box().Center()
	ox, oy := cx-bw/2, cy-bh/2

	vx, vy := tx-ox, ty-oy
	length := math.Hypot(vx, vy)
	if length == 0 {
		vx, vy, length = 1, 0, 1
	}
	speed := w.cfg.Bullets.Speed
	return w.SpawnBullet(ox, oy, vx/length*speed, vy/length*speed)
}

// bulletParams are shared by every projectile: no gravity or friction, and
// the configured speed as the limit on both axes.
func (w *World) bulletParams() Params {
	p := ResolveParams(KindBullet, nil, w.cfg.Physics, w.grid.TileSize())
	if w.cfg.Bullets.Speed > 0 {
		p.MaxDX = w.cfg.Bullets.Speed
		p.MaxDY = w.cfg.Bullets.Speed
	}
	return p
}

func (w *World) bulletSize() (float64, float64) {
	tile := w.grid.TileSize()
	return orTile(w.cfg.Bullets.Width, tile), orTile(w.cfg.Bullets.Height, tile)
}

func (w *World) newEntity(kind Kind, x, y, width, height float64, params Params) *Entity {
	w.nextID++
	return &Entity{
		ID:     w.nextID,
		Kind:   kind,
		X:      x,
		Y:      y,
		W:      width,
		H:      height,
		Params: params,
		SpawnX: x,
		SpawnY: y,
	}
}

// insert indexes e and appends it to the entity list. Entities outside the
// grid are marked Removed and never listed.
func (w *World) insert(e *Entity) bool {
	if !w.index.Add(e) {
		e.Removed = true
		w.logger.Debug("spawn outside grid", "id", e.ID, "kind", e.Kind, "x", e.X, "y", e.Y)
		return false
	}
	w.entities = append(w.entities, e)
	return true
}

func orTile(v, tile float64) float64 {
	if v <= 0 {
		return tile
	}
	return v
}

// Player returns the player entity, or nil before one is spawned.
func (w *World) Player() *Entity {
	return w.player
}

// Entities returns the live entity list in spawn order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Grid returns the tile grid.
func (w *World) Grid() *TileGrid {
	return w.grid
}

// Index returns the spatial index.
func (w *World) Index() *SpatialIndex {
	return w.index
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Step returns the fixed timestep in seconds.
func (w *World) Step() float64 {
	return w.dt
}
