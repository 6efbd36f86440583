package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platformer/levels/formats"
)

const testdata = "testdata/levels"

func TestLoaderLoadAll(t *testing.T) {
	lvls, err := NewLoader(testdata).LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	// broken.yaml does not parse and is skipped.
	assert.Equal(t, []string{"classic", "intro", "native", "tower"}, ids)
}

func TestLoadYAMLRows(t *testing.T) {
	lvl, err := LoadFile(filepath.Join(testdata, "intro.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "intro", lvl.ID)
	assert.Equal(t, "Intro", lvl.Name)
	assert.Equal(t, 8, lvl.Width)
	assert.Equal(t, 5, lvl.Height)
	assert.Equal(t, 32.0, lvl.TileSize)
	require.Len(t, lvl.Tiles, 40)
	assert.Equal(t, platformer.TileOneWay, lvl.Tiles[4+1*8])
	assert.Equal(t, platformer.TileConveyorRight, lvl.Tiles[3+3*8])
	assert.Equal(t, platformer.TileSolid, lvl.Tiles[0+4*8])

	require.Len(t, lvl.Entities, 3)
	monster := lvl.Entities[1]
	assert.Equal(t, "monster", monster.Kind)
	assert.True(t, monster.Properties.Bool("left"))
	maxdx, ok := monster.Properties.Float("maxdx")
	assert.True(t, ok)
	assert.Equal(t, 4.0, maxdx)

	require.NoError(t, lvl.Validate())
	w, err := platformer.BuildWorld(&lvl.LevelData, config.DefaultPlatformerConfig())
	require.NoError(t, err)
	assert.NotNil(t, w.Player())
}

func TestLoadTiledJSON(t *testing.T) {
	lvl, err := LoadFile(filepath.Join(testdata, "classic.json"))
	require.NoError(t, err)

	assert.Equal(t, "classic", lvl.ID)
	assert.Equal(t, "Classic", lvl.Name)
	assert.Equal(t, 32.0, lvl.TileSize)
	assert.Equal(t, []platformer.TileCode{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 6, 1}, lvl.Tiles)

	require.Len(t, lvl.Entities, 2)
	assert.Equal(t, "player", lvl.Entities[0].Kind)
	assert.False(t, lvl.Entities[0].Properties.Bool("left"))

	// List-style properties from newer Tiled exports.
	monster := lvl.Entities[1]
	assert.True(t, monster.Properties.Bool("right"))
	maxdx, ok := monster.Properties.Float("maxdx")
	assert.True(t, ok)
	assert.Equal(t, 2.0, maxdx)

	assert.NoError(t, lvl.Validate())
}

func TestLoadNativeJSON(t *testing.T) {
	lvl, err := LoadFile(filepath.Join(testdata, "native.json"))
	require.NoError(t, err)

	assert.Equal(t, "native", lvl.ID)
	assert.Equal(t, []platformer.TileCode{0, 0, 0, 1, 1, 1}, lvl.Tiles)
	assert.NoError(t, lvl.Validate())
}

func TestLoadTMX(t *testing.T) {
	lvl, err := LoadFile(filepath.Join(testdata, "tower.tmx"))
	require.NoError(t, err)

	assert.Equal(t, "tower", lvl.ID)
	assert.Equal(t, 6, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.Equal(t, 16.0, lvl.TileSize)

	// GID 6 carries a code property of 7.
	bottom := lvl.Tiles[3*6:]
	assert.Equal(t, []platformer.TileCode{1, 1, 7, 7, 8, 3}, bottom)

	require.Len(t, lvl.Entities, 3)
	assert.Equal(t, "player", lvl.Entities[0].Kind)
	assert.Equal(t, "monster", lvl.Entities[1].Kind)
	assert.Equal(t, "treasure", lvl.Entities[2].Kind)
	assert.Equal(t, 48.0, lvl.Entities[1].X)
	assert.True(t, lvl.Entities[1].Properties.Bool("left"))
	maxdx, ok := lvl.Entities[1].Properties.Float("maxdx")
	assert.True(t, ok)
	assert.Equal(t, 4.0, maxdx)

	assert.NoError(t, lvl.Validate())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(testdata, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "reading file")

	_, err = LoadFile(filepath.Join(testdata, "broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing file")
}

func TestLoadByID(t *testing.T) {
	loader := NewLoader(testdata)

	lvl, err := loader.LoadByID("tower")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testdata, "tower.tmx"), lvl.FilePath)

	_, err = loader.LoadByID("nope")
	assert.Error(t, err)
}

func TestLoadRowsRejectsRaggedLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"...\"\n  - \"..\"\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestFormatRegistry(t *testing.T) {
	assert.Equal(t, []string{".json", ".tmx", ".yaml", ".yml"}, formats.Extensions())

	f, ok := formats.Lookup(".YML")
	require.True(t, ok)
	assert.Equal(t, "yaml", f.Name)
	assert.NotNil(t, f.Parse)

	f, ok = formats.Lookup(".tmx")
	require.True(t, ok)
	assert.NotNil(t, f.ParseFS)

	_, ok = formats.Lookup(".txt")
	assert.False(t, ok)

	_, err := LoadFile("notes.txt")
	assert.ErrorContains(t, err, "unsupported extension")

	assert.Panics(t, func() {
		formats.Register(formats.Format{Name: "dup", Extensions: []string{".yaml"}})
	})
}
