package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// TileCode identifies a tile's material and behaviour.
type TileCode uint8

// Tile codes. 1-5 are plain solid materials that only differ in colour.
const (
	TileEmpty         TileCode = 0
	TileSolid         TileCode = 1
	TileSolid2        TileCode = 2
	TileSolid3        TileCode = 3
	TileSolid4        TileCode = 4
	TileSolid5        TileCode = 5
	TileConveyorRight TileCode = 6
	TileConveyorLeft  TileCode = 7
	TileOneWay        TileCode = 8
)

// IsSolid reports whether a tile code is anything but empty. Conveyor and
// one-way tiles are solid here; the mover decides how they block.
func IsSolid(code TileCode) bool {
	return code != TileEmpty
}

// blocksDown reports whether a tile stops an entity landing on it from above.
func blocksDown(code TileCode) bool {
	return code != TileEmpty
}

// blocksUp reports whether a tile stops an entity rising into it.
func blocksUp(code TileCode) bool {
	return code != TileEmpty && code != TileOneWay
}

// blocksSide reports whether a tile stops horizontal movement.
func blocksSide(code TileCode) bool {
	return code != TileEmpty && code != TileOneWay
}

// TileGrid is the level's tile map. It is written during level construction
// and only read while the simulation runs.
type TileGrid struct {
	width    int
	height   int
	tileSize float64
	cells    []TileCode // row-major, index = x + y*width
}

// NewTileGrid creates an empty grid of width x height tiles.
func NewTileGrid(width, height int, tileSize float64) *TileGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TileGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		cells:    make([]TileCode, width*height),
	}
}

// Width returns the grid width in tiles.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *TileGrid) Height() int {
	return g.height
}

// TileSize returns the side of one tile in world units.
func (g *TileGrid) TileSize() float64 {
	return g.tileSize
}

// InBounds reports whether (tx, ty) is a cell of the grid.
func (g *TileGrid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.width && ty < g.height
}

// TileAt returns the code at (tx, ty). Out-of-range cells are empty: the
// world boundary is open.
func (g *TileGrid) TileAt(tx, ty int) TileCode {
	if !g.InBounds(tx, ty) {
		return TileEmpty
	}
	return g.cells[tx+ty*g.width]
}

// TileAtPoint returns the code of the tile containing world point (x, y).
func (g *TileGrid) TileAtPoint(x, y float64) TileCode {
	return g.TileAt(g.ToTile(x), g.ToTile(y))
}

// SetTile writes one cell. Out-of-range writes are ignored.
func (g *TileGrid) SetTile(tx, ty int, code TileCode) {
	if !g.InBounds(tx, ty) {
		return
	}
	g.cells[tx+ty*g.width] = code
}

// ToTile converts a world coordinate to a tile coordinate.
func (g *TileGrid) ToTile(v float64) int {
	return core.FloorDiv(v, g.tileSize)
}

// ToWorld converts a tile coordinate to the world coordinate of its edge.
func (g *TileGrid) ToWorld(t int) float64 {
	return float64(t) * g.tileSize
}

// Cells returns a copy of the row-major tile codes.
func (g *TileGrid) Cells() []TileCode {
	out := make([]TileCode, len(g.cells))
	copy(out, g.cells)
	return out
}
