package populate

import (
	"github.com/tilemesh/tilemesh/terrain/noise"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// LeafNoiseMagnitude bounds the green-channel perturbation applied to canopy
// blocks.
const LeafNoiseMagnitude = 0.08

// Seed offsets separating the tree's noise decisions from each other and
// from the terrain streams.
const (
	trunkSeedOffset  = 101
	cornerSeedOffset = 17
	leafSeedOffset   = 131
)

// canopyRadii is the diamond radius of each canopy layer, bottom to top.
var canopyRadii = [...]int32{2, 2, 1}

// Tree grows a trunk of noise-varied height topped by a layered diamond
// canopy and a single crown block.
type Tree struct{}

func (Tree) Populate(dst []voxel.Block, s Site) []voxel.Block {
	x, z := int64(s.Pos.X), int64(s.Pos.Z)
	trunkColor := block.ColorOf(block.Wood)
	leafColor := block.ColorOf(block.Leaves)

	// Trunk height varies between 2 and 4 layers.
	trunkHeight := 2 + int(noise.At(x, z, s.Seed+trunkSeedOffset)*3)
	for i := 0; i < trunkHeight; i++ {
		dst = s.place(dst, s.Pos.X, int32(s.TopY+i), s.Pos.Z, trunkColor)
	}

	// Diamond-shaped canopy layers of shrinking radius. The outermost ring
	// of each layer is included probabilistically so trees do not look
	// stamped from one template.
	canopyBase := s.TopY + trunkHeight
	for layer, r := range canopyRadii {
		y := int32(canopyBase + layer)
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				d := abs(dx) + abs(dz)
				if d > r {
					continue
				}
				if d == r && r > 0 && noise.At(x+int64(dx)*5, z+int64(dz)*11, s.Seed+int64(layer)*cornerSeedOffset) < 0.5 {
					continue
				}
				c := leafColor
				g := noise.At(x*13+int64(dx), z*17+int64(dz), s.Seed+leafSeedOffset)
				c[1] += (g - 0.5) * 2 * LeafNoiseMagnitude
				dst = s.place(dst, s.Pos.X+dx, y, s.Pos.Z+dz, c)
			}
		}
	}

	// Crown.
	return s.place(dst, s.Pos.X, int32(canopyBase+len(canopyRadii)), s.Pos.Z, leafColor)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
