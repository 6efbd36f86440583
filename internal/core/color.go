package core

// Color is a palette slot for a screen cell. The terminal shell maps each
// slot to a concrete terminal colour.
type Color uint8

// Palette used by the platformer renderer.
const (
	ColorDefault Color = iota
	ColorYellow        // player
	ColorBrick         // solid tile, material 1
	ColorPink          // material 2
	ColorPurple        // material 3
	ColorGrey          // material 4 and one-way ledges
	ColorSlate         // monsters and kill tally
	ColorGold          // treasure
	ColorGoldDim       // treasure, low point of the pulse
	ColorWhite         // bullets and HUD text
	ColorCyan          // conveyors
)

// tileColors maps solid tile materials to palette slots, in tile code order.
var tileColors = []Color{ColorYellow, ColorBrick, ColorPink, ColorPurple, ColorGrey}

// TileColor returns the palette slot for a solid tile material index
// (tile code minus one), cycling when the code is past the palette.
func TileColor(material int) Color {
	if material < 0 {
		return ColorDefault
	}
	return tileColors[material%len(tileColors)]
}
