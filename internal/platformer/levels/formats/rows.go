package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// Legend maps ASCII level art to tile codes.
var Legend = map[rune]platformer.TileCode{
	'.': platformer.TileEmpty,
	' ': platformer.TileEmpty,
	'#': platformer.TileSolid,
	'1': platformer.TileSolid,
	'2': platformer.TileSolid2,
	'3': platformer.TileSolid3,
	'4': platformer.TileSolid4,
	'5': platformer.TileSolid5,
	'>': platformer.TileConveyorRight,
	'<': platformer.TileConveyorLeft,
	'=': platformer.TileOneWay,
}

// ParseRows converts ASCII rows into a row-major tile list. All rows must
// have the same width.
func ParseRows(rows []string) (int, int, []platformer.TileCode, error) {
	if len(rows) == 0 {
		return 0, 0, nil, fmt.Errorf("no rows")
	}
	width := len([]rune(rows[0]))
	tiles := make([]platformer.TileCode, 0, width*len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return 0, 0, nil, fmt.Errorf("row %d: width %d, expected %d", y, len(runes), width)
		}
		for x, r := range runes {
			code, ok := Legend[r]
			if !ok {
				return 0, 0, nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, r)
			}
			tiles = append(tiles, code)
		}
	}
	return width, len(rows), tiles, nil
}
