package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
// Max vertical speed is 50 tiles/s so that one tick at 60 Hz never covers a
// whole tile.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      9.8 * 6, // exaggerated gravity
			MaxDX:        15,
			MaxDY:        50,
			Accel:        1.0 / 2,
			Friction:     1.0 / 6,
			Impulse:      1500,
			ConveyorPush: 1,
		},
		World: WorldConfig{
			TileSize:    32,
			TickRate:    60,
			QueryMargin: 20,
		},
		Bullets: BulletConfig{
			Speed:  1000,
			Width:  5,
			Height: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config --dump`.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
