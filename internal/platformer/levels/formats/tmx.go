package formats

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

func init() {
	Register(Format{Name: "tmx", Extensions: []string{".tmx"}, ParseFS: ParseTMX})
}

// ParseTMX loads a Tiled map from fsys. The first tile layer becomes the
// tile grid; every object in every object group becomes a spawn whose kind
// is the object's class (or legacy type). The level ID is the file stem.
//
// A tile's code is its tileset tile "code" property when set, otherwise its
// global tile ID.
func ParseTMX(fsys fs.FS, name string) (platformer.LevelData, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return platformer.LevelData{}, fmt.Errorf("load TMX %s: %w", name, err)
	}

	id := strings.TrimSuffix(path.Base(name), path.Ext(name))
	level := platformer.LevelData{
		ID:       id,
		Name:     id,
		Width:    m.Width,
		Height:   m.Height,
		TileSize: float64(m.TileWidth),
		Tiles:    make([]platformer.TileCode, m.Width*m.Height),
	}

	if len(m.Layers) > 0 {
		layer := m.Layers[0]
		for i, tile := range layer.Tiles {
			if i >= len(level.Tiles) {
				break
			}
			if tile.IsNil() {
				continue
			}
			code, err := tileCode(tile)
			if err != nil {
				return platformer.LevelData{}, fmt.Errorf("layer %s tile %d: %w", layer.Name, i, err)
			}
			level.Tiles[i] = code
		}
	}

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			level.Entities = append(level.Entities, platformer.SpawnDesc{
				Kind:       kind,
				X:          o.X,
				Y:          o.Y,
				Width:      o.Width,
				Height:     o.Height,
				Properties: tmxProperties(o.Properties),
			})
		}
	}
	return level, nil
}

func tileCode(tile *tiled.LayerTile) (platformer.TileCode, error) {
	if ts, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
		if raw := ts.Properties.GetString("code"); raw != "" {
			code, err := strconv.ParseUint(raw, 10, 8)
			if err != nil {
				return 0, fmt.Errorf("code property %q: %w", raw, err)
			}
			return platformer.TileCode(code), nil
		}
	}
	gid := tile.Tileset.FirstGID + tile.ID
	if gid > 255 {
		return 0, fmt.Errorf("gid %d out of range", gid)
	}
	return platformer.TileCode(gid), nil
}

// Object properties a spawn understands.
var (
	numericKeys = []string{"gravity", "maxdx", "maxdy", "accel", "friction", "impulse", "dx", "dy"}
	boolKeys    = []string{"left", "right"}
)

// propertyGetter is the part of tiled's property list the loader reads.
type propertyGetter interface {
	GetString(name string) string
}

// tmxProperties copies the spawn keys present on an object. Tiled stores
// every value as text; numbers and booleans are parsed here.
func tmxProperties(props propertyGetter) platformer.Properties {
	out := platformer.Properties{}
	for _, key := range numericKeys {
		raw := props.GetString(key)
		if raw == "" {
			continue
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			out[key] = f
		}
	}
	for _, key := range boolKeys {
		if b, err := strconv.ParseBool(props.GetString(key)); err == nil {
			out[key] = b
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
