// Package terrain turns board tile streams into coloured voxel columns and
// surface features: deterministic noise-driven height synthesis, palette
// layering and packing into flat instancing buffers.
package terrain

import (
	"github.com/tilemesh/tilemesh/terrain/biome"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// Tile is one cell of the board as produced by the world generator. Tiles
// are read-only input to the pipeline.
type Tile struct {
	Biome biome.ID
	Block block.Kind
	// Elevation is the tile's coarse elevation between 0 and 10, supplied by
	// the world generator.
	Elevation int
}

// TileUpdate couples a tile with its board position. It is the unit of input
// to the pipeline: callers pass the currently visible or the explored tile
// set as a slice of updates.
type TileUpdate struct {
	Pos  voxel.TilePos
	Tile Tile
}
