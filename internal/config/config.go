// Package config provides YAML-based configuration for the platformer:
// global physics defaults, world settings and projectile tuning.
package config

// PlatformerConfig contains all tunable settings for a simulation run.
type PlatformerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	World   WorldConfig   `yaml:"world"`
	Bullets BulletConfig  `yaml:"bullets"`
}

// PhysicsConfig holds the global motion defaults applied to every spawn that
// does not override them. Distances are in tiles and scaled by the tile size
// when an entity is spawned.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // tiles/s²
	MaxDX        float64 `yaml:"max_dx"`        // tiles/s
	MaxDY        float64 `yaml:"max_dy"`        // tiles/s
	Accel        float64 `yaml:"accel"`         // seconds to reach max_dx
	Friction     float64 `yaml:"friction"`      // seconds to stop from max_dx
	Impulse      float64 `yaml:"impulse"`       // jump impulse, tiles/s²
	ConveyorPush float64 `yaml:"conveyor_push"` // tiles/s drift imparted by a conveyor tile
}

// WorldConfig defines grid and tick settings.
type WorldConfig struct {
	TileSize    float64 `yaml:"tile_size"`    // world units per tile
	TickRate    int     `yaml:"tick_rate"`    // fixed ticks per second
	QueryMargin float64 `yaml:"query_margin"` // broad-phase margin in world units
}

// BulletConfig defines projectile parameters for the fire command.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"` // world units/s
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Step returns the fixed timestep in seconds.
func (w WorldConfig) Step() float64 {
	if w.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(w.TickRate)
}

// Preset names a physics feel.
type Preset string

const (
	PresetNormal Preset = "normal"
	PresetFloaty Preset = "floaty"
	PresetHeavy  Preset = "heavy"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetNormal, PresetFloaty, PresetHeavy:
		return Preset(s)
	default:
		return ""
	}
}
