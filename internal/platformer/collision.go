package platformer

// Input is the player's held controls for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// EventKind classifies something that happened during a tick.
type EventKind uint8

const (
	EventStomp EventKind = iota + 1
	EventPlayerDeath
	EventBulletHit
	EventBulletSpent
	EventTreasure
	EventOutOfBounds
)

// String returns a short event name.
func (k EventKind) String() string {
	switch k {
	case EventStomp:
		return "stomp"
	case EventPlayerDeath:
		return "player-death"
	case EventBulletHit:
		return "bullet-hit"
	case EventBulletSpent:
		return "bullet-spent"
	case EventTreasure:
		return "treasure"
	case EventOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Event names the entity an event happened to. Target is the other party,
// zero when there is none.
type Event struct {
	Kind   EventKind
	ID     int
	Target int
}

// StepResult is the outcome of one Tick.
type StepResult struct {
	Tick   uint64
	Events []Event
}

// Tick advances the simulation by one fixed step: player, monsters with the
// stomp rule, bullet hits, bullets, treasure, then removal of everything
// that died this tick.
func (w *World) Tick(in Input) StepResult {
	w.tick++
	res := StepResult{Tick: w.tick}
	tile := w.grid.TileSize()

	p := w.player
	if p != nil {
		p.Left, p.Right, p.Jump = in.Left, in.Right, in.Jump
		Advance(p, w.grid, w.dt)
		if !w.index.Relocate(p) {
			res.add(EventOutOfBounds, p.ID, 0)
			w.killPlayer(p, &res)
		}
	}

	// The list is only appended to between ticks and compacted at the end,
	// so ranging over it here sees a stable set.
	for _, m := range w.entities {
		if m.Kind != KindMonster || !m.Live() {
			continue
		}
		Advance(m, w.grid, w.dt)
		if !w.index.Relocate(m) {
			m.Removed = true
			res.add(EventOutOfBounds, m.ID, 0)
			w.logger.Debug("monster left grid", "id", m.ID)
			continue
		}
		if p == nil || !p.TileBox(tile).Overlaps(m.TileBox(tile)) {
			continue
		}
		if p.DY > 0 && m.Y-p.Y > tile/2 {
			m.Dead = true
			p.Stats.Killed++
			res.add(EventStomp, p.ID, m.ID)
			w.logger.Debug("monster stomped", "id", m.ID, "killed", p.Stats.Killed)
		} else {
			w.killPlayer(p, &res)
			res.Events[len(res.Events)-1].Target = m.ID
		}
	}

	for _, b := range w.entities {
		if b.Kind != KindBullet || !b.Live() {
			continue
		}
		// Monsters are hit on their tile box, which may extend past their
		// own size, so the broad phase is widened by a tile on every side.
		for _, m := range w.index.QueryRect(b.X-tile, b.Y-tile, b.W+2*tile, b.H+2*tile, w.cfg.World.QueryMargin) {
			if m.Kind != KindMonster || !b.Box().Overlaps(m.TileBox(tile)) {
				continue
			}
			m.Dead = true
			b.Dead = true
			res.add(EventBulletHit, b.ID, m.ID)
			w.logger.Debug("monster shot", "id", m.ID, "bullet", b.ID)
			break
		}
	}

	for _, b := range w.entities {
		if b.Kind != KindBullet || !b.Live() {
			continue
		}
		contact := Advance(b, w.grid, w.dt)
		if !w.index.Relocate(b) {
			b.Removed = true
			res.add(EventOutOfBounds, b.ID, 0)
			continue
		}
		if contact.Blocked() {
			b.Dead = true
			res.add(EventBulletSpent, b.ID, 0)
		}
	}

	if p != nil {
		for _, t := range w.entities {
			if t.Kind != KindTreasure || !t.Live() {
				continue
			}
			if p.TileBox(tile).Overlaps(t.TileBox(tile)) {
				t.Collected = true
				p.Stats.Collected++
				res.add(EventTreasure, p.ID, t.ID)
				w.logger.Debug("treasure collected", "id", t.ID, "collected", p.Stats.Collected)
			}
		}
	}

	w.compact()
	return res
}

// killPlayer sends the player back to its spawn point. Counters are kept.
func (w *World) killPlayer(p *Entity, res *StepResult) {
	p.Respawn()
	p.Stats.Deaths++
	w.index.Relocate(p)
	res.add(EventPlayerDeath, p.ID, 0)
	w.logger.Debug("player died", "deaths", p.Stats.Deaths)
}

// compact evicts entities that are no longer live from the index and the
// entity list. The player is never evicted.
func (w *World) compact() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e == w.player || e.Live() {
			kept = append(kept, e)
			continue
		}
		w.index.Remove(e, e.XSlot, e.YSlot)
		e.Removed = true
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
}

func (r *StepResult) add(kind EventKind, id, target int) {
	r.Events = append(r.Events, Event{Kind: kind, ID: id, Target: target})
}
