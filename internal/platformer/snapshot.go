package platformer

// Body is the drawable state of one entity.
type Body struct {
	ID     int
	X, Y   float64
	W, H   float64
	DX, DY float64
}

// PlayerView is the player's body plus its counters and movement state.
type PlayerView struct {
	Body
	Stats
	Falling bool
	Jumping bool
}

// Snapshot is a copy of the world state for renderers. Nothing in it aliases
// the live world.
type Snapshot struct {
	Tick     uint64
	TileSize float64
	Width    int // tiles
	Height   int // tiles
	Tiles    []TileCode

	HasPlayer bool
	Player    PlayerView
	Monsters  []Body
	Bullets   []Body
	Treasure  []Body // uncollected only
}

// TileAt returns the code at (tx, ty), empty when out of range.
func (s *Snapshot) TileAt(tx, ty int) TileCode {
	if tx < 0 || ty < 0 || tx >= s.Width || ty >= s.Height {
		return TileEmpty
	}
	return s.Tiles[tx+ty*s.Width]
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     w.tick,
		TileSize: w.grid.TileSize(),
		Width:    w.grid.Width(),
		Height:   w.grid.Height(),
		Tiles:    w.grid.Cells(),
	}
	if p := w.player; p != nil {
		s.HasPlayer = true
		s.Player = PlayerView{
			Body:    bodyOf(p),
			Stats:   p.Stats,
			Falling: p.Falling,
			Jumping: p.Jumping,
		}
	}
	for _, e := range w.entities {
		if !e.Live() {
			continue
		}
		switch e.Kind {
		case KindMonster:
			s.Monsters = append(s.Monsters, bodyOf(e))
		case KindBullet:
			s.Bullets = append(s.Bullets, bodyOf(e))
		case KindTreasure:
			s.Treasure = append(s.Treasure, bodyOf(e))
		}
	}
	return s
}

func bodyOf(e *Entity) Body {
	return Body{ID: e.ID, X: e.X, Y: e.Y, W: e.W, H: e.H, DX: e.DX, DY: e.DY}
}
