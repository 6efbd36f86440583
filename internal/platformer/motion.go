package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Contact records which sides of an entity were snapped against tiles
// during one Advance.
type Contact uint8

const (
	ContactFloor Contact = 1 << iota
	ContactCeiling
	ContactWall
)

// Blocked reports whether any tile stopped the move.
func (c Contact) Blocked() bool {
	return c != 0
}

// conveyorProbe is how far below its feet an entity feels a conveyor.
const conveyorProbe = 1.0

// Advance moves e by one fixed step of dt seconds through grid and resolves
// tile collisions. Collision is resolved for a one-tile body anchored at the
// entity's top-left cell, vertical axis first.
func Advance(e *Entity, grid *TileGrid, dt float64) Contact {
	p := e.Params

	applyConveyors(e, grid)

	wasLeft := e.DX < 0
	wasRight := e.DX > 0
	falling := e.Falling

	friction := p.Friction
	accel := p.Accel
	if falling {
		friction *= 0.5
		accel *= 0.5
	}

	e.DDX = 0
	e.DDY = p.Gravity

	if e.Left {
		e.DDX -= accel
	} else if wasLeft {
		e.DDX += friction
	}

	if e.Right {
		e.DDX += accel
	} else if wasRight {
		e.DDX -= friction
	}

	if e.Jump && !e.Jumping && !falling {
		e.DDY -= p.Impulse
		e.Jumping = true
	}

	e.X += dt * e.DX
	e.Y += dt * e.DY
	e.DX = core.ClampF(e.DX+dt*e.DDX, -p.MaxDX, p.MaxDX)
	e.DY = core.ClampF(e.DY+dt*e.DDY, -p.MaxDY, p.MaxDY)

	// Friction must stop a body, not push it back the other way.
	if (wasLeft && e.DX > 0) || (wasRight && e.DX < 0) {
		if p.Friction != 0 {
			e.DX = 0
		}
	}

	return resolveTiles(e, grid)
}

// applyConveyors nudges dx once for each conveyor direction found under or
// inside e, however many tiles of it are touched.
func applyConveyors(e *Entity, grid *TileGrid) {
	if e.Params.Conveyor == 0 {
		return
	}
	const d = 0.1
	x0 := grid.ToTile(e.X)
	x1 := grid.ToTile(e.X + e.W - d)
	y0 := grid.ToTile(e.Y)
	y1 := grid.ToTile(e.Y + e.H - d + conveyorProbe)

	var right, left bool
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			switch grid.TileAt(tx, ty) {
			case TileConveyorRight:
				right = true
			case TileConveyorLeft:
				left = true
			}
		}
	}
	if right {
		e.DX += e.Params.Conveyor
	}
	if left {
		e.DX -= e.Params.Conveyor
	}
}

func resolveTiles(e *Entity, grid *TileGrid) Contact {
	var contact Contact

	size := grid.TileSize()
	tx := grid.ToTile(e.X)
	ty := grid.ToTile(e.Y)
	nx := math.Mod(e.X, size) != 0
	ny := math.Mod(e.Y, size) != 0

	cell := grid.TileAt(tx, ty)
	cellRight := grid.TileAt(tx+1, ty)
	cellDown := grid.TileAt(tx, ty+1)
	cellDiag := grid.TileAt(tx+1, ty+1)

	if e.DY > 0 {
		if (blocksDown(cellDown) && !blocksDown(cell)) ||
			(blocksDown(cellDiag) && !blocksDown(cellRight) && nx) {
			e.Y = grid.ToWorld(ty)
			e.DY = 0
			e.Falling = false
			e.Jumping = false
			ny = false
			contact |= ContactFloor
		}
	} else if e.DY < 0 {
		if (blocksUp(cell) && !blocksUp(cellDown)) ||
			(blocksUp(cellRight) && !blocksUp(cellDiag) && nx) {
			e.Y = grid.ToWorld(ty + 1)
			e.DY = 0
			cell = cellDown
			cellRight = cellDiag
			ny = false
			contact |= ContactCeiling
		}
	}

	if e.DX > 0 {
		if (blocksSide(cellRight) && !blocksSide(cell)) ||
			(blocksSide(cellDiag) && !blocksSide(cellDown) && ny) {
			e.X = grid.ToWorld(tx)
			e.DX = 0
			contact |= ContactWall
		}
	} else if e.DX < 0 {
		if (blocksSide(cell) && !blocksSide(cellRight)) ||
			(blocksSide(cellDown) && !blocksSide(cellDiag) && ny) {
			e.X = grid.ToWorld(tx + 1)
			e.DX = 0
			contact |= ContactWall
		}
	}

	if e.Kind == KindMonster {
		if e.Left && (blocksSide(cell) || !blocksDown(cellDown)) {
			e.Left = false
			e.Right = true
		} else if e.Right && (blocksSide(cellRight) || !blocksDown(cellDiag)) {
			e.Right = false
			e.Left = true
		}
	}

	e.Falling = !(blocksDown(cellDown) || (nx && blocksDown(cellDiag)))
	e.OnGround = !e.Falling

	return contact
}
