package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// cellsPerTile is how many terminal columns one tile spans. Terminal cells
// are about twice as tall as wide, so a tile is two columns by one row.
const cellsPerTile = 2

// Camera is the top-left tile of the visible part of the level.
type Camera struct {
	X, Y int
}

// Follow centres the camera on the player, clamped to the level edges.
func Follow(snap *platformer.Snapshot, viewW, viewH int) Camera {
	tilesW := viewW / cellsPerTile
	if !snap.HasPlayer || snap.TileSize <= 0 {
		return Camera{}
	}
	px := core.FloorDiv(snap.Player.X, snap.TileSize)
	py := core.FloorDiv(snap.Player.Y, snap.TileSize)
	return Camera{
		X: core.Clamp(px-tilesW/2, 0, max(0, snap.Width-tilesW)),
		Y: core.Clamp(py-viewH/2, 0, max(0, snap.Height-viewH)),
	}
}

// ScreenToWorld converts a view cell to the world point at its centre.
func (c Camera) ScreenToWorld(col, row int, tileSize float64) (float64, float64) {
	x := (float64(c.X) + (float64(col)+0.5)/cellsPerTile) * tileSize
	y := (float64(c.Y) + float64(row) + 0.5) * tileSize
	return x, y
}

// DrawWorld draws the visible part of a snapshot into s, starting at screen
// row top and spanning viewH rows. pulse in [0,1] drives the treasure glow.
func DrawWorld(s *core.Screen, snap *platformer.Snapshot, cam Camera, top, viewH int, pulse float64) {
	for row := 0; row < viewH; row++ {
		ty := cam.Y + row
		for col := 0; col < s.Width(); col++ {
			tx := cam.X + col/cellsPerTile
			r, c := tileGlyph(snap.TileAt(tx, ty))
			s.SetColored(col, top+row, r, c)
		}
	}

	treasure := core.ColorGold
	if pulse < 0.5 {
		treasure = core.ColorGoldDim
	}
	for _, b := range snap.Treasure {
		drawBody(s, snap, cam, top, viewH, b, '$', treasure)
	}
	for _, b := range snap.Monsters {
		drawBody(s, snap, cam, top, viewH, b, 'M', core.ColorSlate)
	}
	for _, b := range snap.Bullets {
		drawBody(s, snap, cam, top, viewH, b, '•', core.ColorWhite)
	}
	if snap.HasPlayer {
		drawBody(s, snap, cam, top, viewH, snap.Player.Body, '@', core.ColorYellow)
	}
}

func drawBody(s *core.Screen, snap *platformer.Snapshot, cam Camera, top, viewH int, b platformer.Body, r rune, c core.Color) {
	t := snap.TileSize
	col := int(math.Floor(b.X/t*cellsPerTile)) - cam.X*cellsPerTile
	row := core.FloorDiv(b.Y, t) - cam.Y
	w := max(1, int(math.Round(b.W/t*cellsPerTile)))
	h := max(1, int(math.Round(b.H/t)))

	for y := row; y < row+h; y++ {
		if y < 0 || y >= viewH {
			continue
		}
		for x := col; x < col+w; x++ {
			s.SetColored(x, top+y, r, c)
		}
	}
}

// tileGlyph returns how a tile code is drawn.
func tileGlyph(code platformer.TileCode) (rune, core.Color) {
	switch code {
	case platformer.TileEmpty:
		return ' ', core.ColorDefault
	case platformer.TileConveyorRight:
		return '»', core.ColorCyan
	case platformer.TileConveyorLeft:
		return '«', core.ColorCyan
	case platformer.TileOneWay:
		return '▔', core.ColorGrey
	default:
		return '█', core.TileColor(int(code) - 1)
	}
}

// DrawHUD writes the status line: level name, counters and tick.
func DrawHUD(s *core.Screen, row int, name string, snap *platformer.Snapshot, paused bool) {
	p := snap.Player
	status := fmt.Sprintf(" %s  $ %d  M %d  deaths %d  tick %d", name, p.Collected, p.Killed, p.Deaths, snap.Tick)
	if paused {
		status += "  [PAUSED]"
	}
	s.DrawText(0, row, status, core.ColorWhite)
	if left := len(snap.Treasure); left == 0 && snap.HasPlayer {
		msg := "all treasure found! "
		s.DrawText(s.Width()-len(msg), row, msg, core.ColorGold)
	}
}
