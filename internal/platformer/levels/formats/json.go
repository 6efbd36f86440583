package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// TiledJSON is the subset of Tiled's JSON map export the platformer reads:
// the first tile layer and the first object layer.
type TiledJSON struct {
	Width      int              `yaml:"width"`
	Height     int              `yaml:"height"`
	TileWidth  float64          `yaml:"tilewidth"`
	Properties TiledProperties  `yaml:"properties,omitempty"`
	Layers     []TiledJSONLayer `yaml:"layers"`
}

// TiledJSONLayer is a tile layer (Data) or an object layer (Objects).
type TiledJSONLayer struct {
	Name    string            `yaml:"name"`
	Type    string            `yaml:"type"`
	Data    []int             `yaml:"data,omitempty"`
	Objects []TiledJSONObject `yaml:"objects,omitempty"`
}

// TiledJSONObject is a placed object. Older exports keep properties as a map.
type TiledJSONObject struct {
	Name       string          `yaml:"name"`
	Type       string          `yaml:"type"`
	Class      string          `yaml:"class"`
	X          float64         `yaml:"x"`
	Y          float64         `yaml:"y"`
	Width      float64         `yaml:"width"`
	Height     float64         `yaml:"height"`
	Properties TiledProperties `yaml:"properties,omitempty"`
}

// TiledProperties accepts both property encodings Tiled has used: a plain
// object, and a list of {name, type, value} entries.
type TiledProperties map[string]any

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *TiledProperties) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			return err
		}
		*p = m
		return nil
	case yaml.SequenceNode:
		var list []struct {
			Name  string `yaml:"name"`
			Type  string `yaml:"type"`
			Value any    `yaml:"value"`
		}
		if err := node.Decode(&list); err != nil {
			return err
		}
		m := make(map[string]any, len(list))
		for _, prop := range list {
			m[prop.Name] = prop.Value
		}
		*p = m
		return nil
	default:
		return fmt.Errorf("properties: unexpected yaml node kind %d", node.Kind)
	}
}

func init() {
	Register(Format{Name: "json", Extensions: []string{".json"}, Parse: ParseJSON})
}

// ParseJSON parses a .json level. Files with a "layers" key are Tiled map
// exports; anything else uses the native schema. JSON is read with the YAML
// decoder, which accepts it as-is.
func ParseJSON(data []byte) (platformer.LevelData, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return platformer.LevelData{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if _, ok := probe["layers"]; !ok {
		return ParseYAML(data)
	}

	var tj TiledJSON
	if err := yaml.Unmarshal(data, &tj); err != nil {
		return platformer.LevelData{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return tj.toLevel()
}

func (tj TiledJSON) toLevel() (platformer.LevelData, error) {
	level := platformer.LevelData{
		Width:    tj.Width,
		Height:   tj.Height,
		TileSize: tj.TileWidth,
	}
	if name, ok := tj.Properties["name"].(string); ok {
		level.Name = name
	}

	var tilesDone, objectsDone bool
	for _, layer := range tj.Layers {
		switch {
		case !tilesDone && layer.Data != nil:
			level.Tiles = make([]platformer.TileCode, len(layer.Data))
			for i, gid := range layer.Data {
				if gid < 0 || gid > 255 {
					return platformer.LevelData{}, fmt.Errorf("layer %s tile %d: gid %d out of range", layer.Name, i, gid)
				}
				level.Tiles[i] = platformer.TileCode(gid)
			}
			tilesDone = true
		case !objectsDone && layer.Objects != nil:
			for _, o := range layer.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type
				}
				level.Entities = append(level.Entities, platformer.SpawnDesc{
					Kind:       kind,
					X:          o.X,
					Y:          o.Y,
					Width:      o.Width,
					Height:     o.Height,
					Properties: platformer.Properties(o.Properties),
				})
			}
			objectsDone = true
		}
	}
	return level, nil
}
