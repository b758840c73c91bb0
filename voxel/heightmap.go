package voxel

import "github.com/brentp/intintmap"

// HeightMap records the column height built for each tile position. It is
// filled by the column builder and read by the feature builder and by entity
// placement logic outside this module.
type HeightMap struct {
	m     *intintmap.Map
	order []TilePos
}

// NewHeightMap creates a height map sized for the amount of tiles passed.
func NewHeightMap(tiles int) *HeightMap {
	if tiles < 8 {
		tiles = 8
	}
	return &HeightMap{m: intintmap.New(tiles*2, 0.6)}
}

// Set records the column height at pos, replacing any previous entry.
func (h *HeightMap) Set(pos TilePos, height int) {
	if _, ok := h.m.Get(pos.Key()); !ok {
		h.order = append(h.order, pos)
	}
	h.m.Put(pos.Key(), int64(height))
}

// At returns the column height at pos and whether a column was built there.
func (h *HeightMap) At(pos TilePos) (int, bool) {
	v, ok := h.m.Get(pos.Key())
	return int(v), ok
}

// AtOrDefault returns the column height at pos, or fallback if no column was
// built there.
func (h *HeightMap) AtOrDefault(pos TilePos, fallback int) int {
	if v, ok := h.At(pos); ok {
		return v
	}
	return fallback
}

// Len returns the number of positions with a recorded height.
func (h *HeightMap) Len() int {
	return len(h.order)
}

// Positions returns the recorded positions in insertion order. The slice is
// shared with the map and must not be modified.
func (h *HeightMap) Positions() []TilePos {
	return h.order
}

// MergeHeightMaps overlays the currently visible height map onto the explored
// one. Where both maps hold a position, the visible height wins: the visible
// set was built from fresher tile data.
func MergeHeightMaps(visible, explored *HeightMap) *HeightMap {
	merged := NewHeightMap(visible.Len() + explored.Len())
	for _, pos := range explored.order {
		v, _ := explored.At(pos)
		merged.Set(pos, v)
	}
	for _, pos := range visible.order {
		v, _ := visible.At(pos)
		merged.Set(pos, v)
	}
	return merged
}
