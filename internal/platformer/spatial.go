package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// SpatialIndex buckets entities by the tile cell containing their center.
// It is a broad phase only: QueryRect re-checks exact overlap.
type SpatialIndex struct {
	width    int
	height   int
	tileSize float64
	buckets  [][]*Entity
	count    int
}

// NewSpatialIndex creates an index with one bucket per tile cell.
func NewSpatialIndex(width, height int, tileSize float64) *SpatialIndex {
	return &SpatialIndex{
		width:    width,
		height:   height,
		tileSize: tileSize,
		buckets:  make([][]*Entity, width*height),
	}
}

// SlotFor returns the cell containing the center of e.
func (s *SpatialIndex) SlotFor(e *Entity) (int, int) {
	return core.FloorDiv(e.X+e.W/2, s.tileSize), core.FloorDiv(e.Y+e.H/2, s.tileSize)
}

// InBounds reports whether (cx, cy) has a bucket.
func (s *SpatialIndex) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < s.width && cy < s.height
}

// Add stores e in the bucket for its current position and caches the cell
// in e.XSlot/e.YSlot. It returns false, leaving the index untouched, when the
// cell is outside the grid.
func (s *SpatialIndex) Add(e *Entity) bool {
	cx, cy := s.SlotFor(e)
	e.XSlot, e.YSlot = cx, cy
	if !s.InBounds(cx, cy) {
		return false
	}
	i := cx + cy*s.width
	s.buckets[i] = append(s.buckets[i], e)
	s.count++
	return true
}

// Remove deletes e from bucket (cx, cy). Missing entries are ignored.
func (s *SpatialIndex) Remove(e *Entity, cx, cy int) {
	if !s.InBounds(cx, cy) {
		return
	}
	i := cx + cy*s.width
	bucket := s.buckets[i]
	for j, other := range bucket {
		if other == e {
			// Keep insertion order so query results stay deterministic.
			copy(bucket[j:], bucket[j+1:])
			bucket[len(bucket)-1] = nil
			s.buckets[i] = bucket[:len(bucket)-1]
			s.count--
			return
		}
	}
}

// Relocate moves e to the bucket for its new position if its cell changed.
// It returns false when e has left the grid; e is then no longer indexed.
func (s *SpatialIndex) Relocate(e *Entity) bool {
	cx, cy := s.SlotFor(e)
	if cx == e.XSlot && cy == e.YSlot {
		return s.InBounds(cx, cy)
	}
	s.Remove(e, e.XSlot, e.YSlot)
	return s.Add(e)
}

// Bucket returns the entities stored in cell (cx, cy). The slice is owned by
// the index and must not be modified.
func (s *SpatialIndex) Bucket(cx, cy int) []*Entity {
	if !s.InBounds(cx, cy) {
		return nil
	}
	return s.buckets[cx+cy*s.width]
}

// Len returns the number of indexed entities.
func (s *SpatialIndex) Len() int {
	return s.count
}

// QueryRect returns the live entities overlapping the rectangle (x, y, w, h).
// Buckets within margin of the rectangle are scanned; each candidate is then
// tested with the inclusive-edge AABB check against the rectangle itself.
func (s *SpatialIndex) QueryRect(x, y, w, h, margin float64) []*Entity {
	if s.width == 0 || s.height == 0 {
		return nil
	}
	x0 := core.Clamp(core.FloorDiv(x-margin, s.tileSize), 0, s.width-1)
	x1 := core.Clamp(core.FloorDiv(x+w+margin, s.tileSize), 0, s.width-1)
	y0 := core.Clamp(core.FloorDiv(y-margin, s.tileSize), 0, s.height-1)
	y1 := core.Clamp(core.FloorDiv(y+h+margin, s.tileSize), 0, s.height-1)

	var out []*Entity
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, e := range s.buckets[cx+cy*s.width] {
				if !e.Live() {
					continue
				}
				if core.Overlaps(e.X, e.Y, e.W, e.H, x, y, w, h) {
					out = append(out, e)
				}
			}
		}
	}
	return out
}
