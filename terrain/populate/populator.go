// Package populate places surface decorations, such as trees, flora and
// torches, on top of previously built terrain columns.
package populate

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// Site describes where a populator may place blocks: the tile position, the
// first free layer above the column, and the colour treatment of the pass.
type Site struct {
	Pos    voxel.TilePos
	TopY   int
	Seed   int64
	Dimmed bool
}

// Populator appends the blocks of one surface feature to dst and returns the
// extended slice.
type Populator interface {
	Populate(dst []voxel.Block, s Site) []voxel.Block
}

var stemGreen = mgl64.Vec3{0.30, 0.55, 0.25}

var populators = map[block.Kind]Populator{
	block.Wood:          Tree{},
	block.Leaves:        Sprig{Color: block.ColorOf(block.Leaves)},
	block.FlowerRed:     Shrub{Stem: stemGreen, Cap: block.ColorOf(block.FlowerRed)},
	block.FlowerYellow:  Shrub{Stem: stemGreen, Cap: block.ColorOf(block.FlowerYellow)},
	block.MushroomRed:   Shrub{Stem: mgl64.Vec3{0.88, 0.84, 0.76}, Cap: block.ColorOf(block.MushroomRed)},
	block.MushroomBrown: Shrub{Stem: mgl64.Vec3{0.88, 0.84, 0.76}, Cap: block.ColorOf(block.MushroomBrown)},
	block.Cactus:        Stalk{Color: block.ColorOf(block.Cactus)},
	block.SugarCane:     Stalk{Color: block.ColorOf(block.SugarCane)},
	block.DeadBush:      Sprig{Color: block.ColorOf(block.DeadBush)},
	block.Torch:         Torch{},
}

// For returns the populator responsible for the block kind passed, if the
// kind places a surface feature at all.
func For(k block.Kind) (Populator, bool) {
	p, ok := populators[k]
	return p, ok
}

// place appends one block, applying the clamping and dimming rules every
// feature colour is subject to.
func (s Site) place(dst []voxel.Block, x, y, z int32, c mgl64.Vec3) []voxel.Block {
	c = voxel.Clamp01(c)
	if s.Dimmed {
		c = c.Mul(voxel.DimFactor)
	}
	return append(dst, voxel.Block{X: x, Y: y, Z: z, Color: c})
}
