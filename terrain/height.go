package terrain

import (
	"github.com/tilemesh/tilemesh/terrain/biome"
	"github.com/tilemesh/tilemesh/terrain/noise"
	"github.com/tilemesh/tilemesh/voxel"
)

// DefaultOctaves is the octave count used for height-field noise.
const DefaultOctaves = 3

// heightNoiseScale is the spatial frequency at which fractal noise feeds the
// column height formulas. Keying the sample off the tile's board position
// keeps equal-elevation neighbours from forming height islands.
const heightNoiseScale = 0.15

// TileHeight computes the column height in blocks for a tile at pos. The
// result is at least 1 for every valid tile; land biomes never go below 2.
func TileHeight(t Tile, pos voxel.TilePos, seed int64) int {
	n := noise.Fractal(float64(pos.X)*heightNoiseScale, float64(pos.Z)*heightNoiseScale, seed, DefaultOctaves)
	return biome.ByID(t.Biome).ColumnHeight(t.Elevation, n)
}

// Heights computes the column height map alone, without building any blocks.
// It matches the height map returned by BuildColumns for the same input.
func Heights(tiles []TileUpdate, seed int64) *voxel.HeightMap {
	heights := voxel.NewHeightMap(len(tiles))
	for _, tu := range tiles {
		heights.Set(tu.Pos, TileHeight(tu.Tile, tu.Pos, seed))
	}
	return heights
}
