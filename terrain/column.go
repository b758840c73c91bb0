package terrain

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tilemesh/tilemesh/terrain/biome"
	"github.com/tilemesh/tilemesh/terrain/noise"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// Colour constants fixed by the board's visual design.
const (
	// overrideBlend pulls the top colour of a column towards the raw block
	// colour, so ores and special blocks keep their signature under biome
	// tinting.
	overrideBlend = 0.4
	// topNoiseMagnitude and sideNoiseMagnitude bound the multiplicative
	// colour perturbation of surface and sub-surface layers respectively.
	topNoiseMagnitude  = 0.10
	sideNoiseMagnitude = 0.05
)

// colourJitterSeedOffset separates the colour noise stream from the height
// noise stream.
const colourJitterSeedOffset = 91

// BuildColumns stacks coloured unit blocks for every tile, from layer 0 up
// to the tile's computed height, and records each column height. The block
// at the top layer carries the tile's block colour blended into the biome
// palette; layers below follow the biome's sub-surface colouring. With
// dimmed set, every colour channel is scaled by voxel.DimFactor.
func BuildColumns(tiles []TileUpdate, dimmed bool, seed int64) ([]voxel.Block, *voxel.HeightMap) {
	blocks := make([]voxel.Block, 0, len(tiles)*4)
	heights := voxel.NewHeightMap(len(tiles))

	for _, tu := range tiles {
		b := biome.ByID(tu.Tile.Biome)
		h := TileHeight(tu.Tile, tu.Pos, seed)
		heights.Set(tu.Pos, h)

		pal := b.Palette()
		stack := b.Stack()
		props := block.Of(tu.Tile.Block)

		for ly := 0; ly < h; ly++ {
			top := ly == h-1

			var c mgl64.Vec3
			magnitude := sideNoiseMagnitude
			if top {
				c = topColor(pal, props)
				magnitude = topNoiseMagnitude
			} else {
				c = subSurfaceColor(pal, stack, ly, h)
			}

			// Multiplicative perturbation keyed off the block position, so
			// neighbouring columns do not repeat.
			j := noise.At(int64(tu.Pos.X)*3+int64(ly), int64(tu.Pos.Z)*7-int64(ly), seed+colourJitterSeedOffset)
			c = voxel.Clamp01(c.Mul(1 + (j-0.5)*2*magnitude))
			if dimmed {
				c = c.Mul(voxel.DimFactor)
			}

			blocks = append(blocks, voxel.Block{X: tu.Pos.X, Y: int32(ly), Z: tu.Pos.Z, Color: c})
		}
	}
	return blocks, heights
}

// topColor picks the colour of a column's surface layer. Palette-overriding
// kinds that are not features use their raw colour unchanged; everything
// else tints the biome's top colour towards the block colour.
func topColor(pal biome.Palette, props block.Properties) mgl64.Vec3 {
	if props.OverridesPalette && !props.Feature {
		return props.Color
	}
	return voxel.Mix(pal.Top, props.Color, overrideBlend)
}

// subSurfaceColor picks the colour of a layer below the surface. Biomes with
// an explicit layer table are indexed by distance below the surface;
// otherwise the palette is blended by the layer's depth fraction.
func subSurfaceColor(pal biome.Palette, stack biome.Stack, ly, height int) mgl64.Vec3 {
	if n := len(stack.Layers); n > 0 {
		d := height - 2 - ly
		if d >= n {
			d = n - 1
		}
		return stack.Layers[d]
	}
	t := float64(ly) / float64(height-1)
	switch {
	case t > 0.7:
		return pal.Top
	case t > 0.3:
		return pal.Mid
	default:
		return pal.Deep
	}
}
