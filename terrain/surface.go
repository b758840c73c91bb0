package terrain

import (
	"github.com/tilemesh/tilemesh/terrain/populate"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// featureFallbackHeight places features for tiles whose column was never
// built, such as explored tiles outside the current visible set.
const featureFallbackHeight = 2

// BuildFeatures places surface decorations on top of previously built
// columns. Tiles whose block kind is not a feature kind are skipped; tiles
// missing from the height map are decorated at a fixed fallback height.
func BuildFeatures(tiles []TileUpdate, heights *voxel.HeightMap, dimmed bool, seed int64) []voxel.Block {
	var blocks []voxel.Block
	for _, tu := range tiles {
		if !block.Of(tu.Tile.Block).Feature {
			continue
		}
		p, ok := populate.For(tu.Tile.Block)
		if !ok {
			continue
		}
		blocks = p.Populate(blocks, populate.Site{
			Pos:    tu.Pos,
			TopY:   heights.AtOrDefault(tu.Pos, featureFallbackHeight),
			Seed:   seed,
			Dimmed: dimmed,
		})
	}
	return blocks
}

// Generate runs the full pipeline for one tile set: column building, surface
// features and buffer packing. The same (tiles, dimmed, seed) input always
// yields identical output.
func Generate(tiles []TileUpdate, dimmed bool, seed int64) (voxel.PackedBuffers, *voxel.HeightMap) {
	blocks, heights := BuildColumns(tiles, dimmed, seed)
	blocks = append(blocks, BuildFeatures(tiles, heights, dimmed, seed)...)
	return voxel.Pack(blocks), heights
}
