package populate

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// Shrub places a two-block stem and cap stack, used for flowers and
// mushrooms.
type Shrub struct {
	Stem, Cap mgl64.Vec3
}

func (f Shrub) Populate(dst []voxel.Block, s Site) []voxel.Block {
	dst = s.place(dst, s.Pos.X, int32(s.TopY), s.Pos.Z, f.Stem)
	return s.place(dst, s.Pos.X, int32(s.TopY+1), s.Pos.Z, f.Cap)
}

// Stalk places a two-block stack of uniform colour, used for cacti and sugar
// cane.
type Stalk struct {
	Color mgl64.Vec3
}

func (f Stalk) Populate(dst []voxel.Block, s Site) []voxel.Block {
	dst = s.place(dst, s.Pos.X, int32(s.TopY), s.Pos.Z, f.Color)
	return s.place(dst, s.Pos.X, int32(s.TopY+1), s.Pos.Z, f.Color)
}

// Sprig places a single block of a fixed colour, used for standalone leaves
// and dead bushes.
type Sprig struct {
	Color mgl64.Vec3
}

func (f Sprig) Populate(dst []voxel.Block, s Site) []voxel.Block {
	return s.place(dst, s.Pos.X, int32(s.TopY), s.Pos.Z, f.Color)
}

// Torch places a single torch block. The matching point light is handled by
// the renderer, not by this pipeline.
type Torch struct{}

func (Torch) Populate(dst []voxel.Block, s Site) []voxel.Block {
	return s.place(dst, s.Pos.X, int32(s.TopY), s.Pos.Z, block.ColorOf(block.Torch))
}
