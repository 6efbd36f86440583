// Package formats provides the level file parsers. Every parser returns a
// platformer.LevelData; validation is left to the caller.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// YAMLLevel is the native level schema. JSON files use the same keys.
// Tiles come either as a flat row-major code list or as ASCII rows.
type YAMLLevel struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	TileSize float64      `yaml:"tile_size,omitempty"`
	Tiles    []int        `yaml:"tiles,omitempty"`
	Rows     []string     `yaml:"rows,omitempty"`
	Entities []YAMLEntity `yaml:"entities"`
}

// YAMLEntity is one spawn.
type YAMLEntity struct {
	Kind       string         `yaml:"kind"`
	X          float64        `yaml:"x"`
	Y          float64        `yaml:"y"`
	Width      float64        `yaml:"width,omitempty"`
	Height     float64        `yaml:"height,omitempty"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

func init() {
	Register(Format{Name: "yaml", Extensions: []string{".yaml", ".yml"}, Parse: ParseYAML})
}

// ParseYAML parses a native level file.
func ParseYAML(data []byte) (platformer.LevelData, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return platformer.LevelData{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.toLevel()
}

func (yl YAMLLevel) toLevel() (platformer.LevelData, error) {
	level := platformer.LevelData{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Width,
		Height:   yl.Height,
		TileSize: yl.TileSize,
	}

	switch {
	case len(yl.Rows) > 0:
		w, h, tiles, err := ParseRows(yl.Rows)
		if err != nil {
			return platformer.LevelData{}, err
		}
		if level.Width == 0 {
			level.Width = w
		}
		if level.Height == 0 {
			level.Height = h
		}
		level.Tiles = tiles
	default:
		level.Tiles = make([]platformer.TileCode, len(yl.Tiles))
		for i, code := range yl.Tiles {
			if code < 0 || code > 255 {
				return platformer.LevelData{}, fmt.Errorf("tile %d: code %d out of range", i, code)
			}
			level.Tiles[i] = platformer.TileCode(code)
		}
	}

	for _, e := range yl.Entities {
		level.Entities = append(level.Entities, platformer.SpawnDesc{
			Kind:       e.Kind,
			X:          e.X,
			Y:          e.Y,
			Width:      e.Width,
			Height:     e.Height,
			Properties: platformer.Properties(e.Properties),
		})
	}
	return level, nil
}
