package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Kind tags what an entity is. Kind-specific rules live in the coordinator.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindMonster
	KindBullet
	KindTreasure
)

// String returns the level-file name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindBullet:
		return "bullet"
	case KindTreasure:
		return "treasure"
	default:
		return "none"
	}
}

// ParseKind maps a level-file kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "player":
		return KindPlayer, nil
	case "monster":
		return KindMonster, nil
	case "bullet":
		return KindBullet, nil
	case "treasure":
		return KindTreasure, nil
	default:
		return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Params are an entity's motion constants in world units, resolved once at
// spawn from level properties and the global defaults.
type Params struct {
	Gravity  float64 // units/s²
	MaxDX    float64 // units/s
	MaxDY    float64 // units/s
	Accel    float64 // units/s²
	Friction float64 // units/s²
	Impulse  float64 // units/s², applied for one tick on jump
	Conveyor float64 // units/s added to dx while touching a conveyor
}

// Stats are the player's counters. They survive respawns.
type Stats struct {
	Killed    int
	Collected int
	Deaths    int
}

// Entity is the physical body shared by every kind.
type Entity struct {
	ID   int
	Kind Kind

	X, Y     float64 // top-left, world units
	DX, DY   float64 // velocity
	DDX, DDY float64 // acceleration accumulator, rebuilt every tick
	W, H     float64

	Params Params

	// Movement intent. The player's come from input, a monster's are its
	// patrol direction.
	Left, Right, Jump bool

	OnGround  bool
	Falling   bool
	Jumping   bool
	Dead      bool
	Removed   bool
	Collected bool // treasure only

	Stats Stats // player only

	SpawnX, SpawnY float64

	// Spatial index cell, synced by the world after each move.
	XSlot, YSlot int
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// TileBox returns a tile-sized box at the entity's position. Player, monster
// and treasure contact rules compare at this granularity.
func (e *Entity) TileBox(tileSize float64) core.Box {
	return core.NewBox(e.X, e.Y, tileSize, tileSize)
}

// Live reports whether the entity still takes part in the simulation.
func (e *Entity) Live() bool {
	if e.Dead || e.Removed {
		return false
	}
	if e.Kind == KindTreasure && e.Collected {
		return false
	}
	return true
}

// Respawn puts the entity back at its spawn point at rest.
func (e *Entity) Respawn() {
	e.X = e.SpawnX
	e.Y = e.SpawnY
	e.DX = 0
	e.DY = 0
}
