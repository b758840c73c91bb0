// Package voxel contains the primitive units shared across the terrain
// pipeline: board positions, coloured unit blocks, column height maps and the
// flat buffers handed to instanced renderers.
package voxel

import "github.com/go-gl/mathgl/mgl64"

// TilePos is the position of a tile on the 2D board grid.
type TilePos struct {
	X, Z int32
}

// Key packs the position into a single int64, with X occupying the upper 32
// bits. The packing is bijective, so it may be used as a map key.
func (p TilePos) Key() int64 {
	return int64(p.X)<<32 | int64(uint32(p.Z))
}

// Block is a single renderable unit cube: an integer grid position with Y as
// the vertical layer, and an RGB colour with channels in [0, 1]. Blocks are
// produced by the column and feature builders and consumed by Pack.
type Block struct {
	X, Y, Z int32
	Color   mgl64.Vec3
}

// DimFactor is the factor explored-but-hidden (fog of war) tiles are
// darkened by. Fixed by the board's visual design.
const DimFactor = 0.35

// Mix linearly interpolates between two colours. t = 0 yields a, t = 1
// yields b.
func Mix(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Clamp01 clamps every channel of a colour into [0, 1].
func Clamp01(c mgl64.Vec3) mgl64.Vec3 {
	for i, v := range c {
		if v < 0 {
			c[i] = 0
		} else if v > 1 {
			c[i] = 1
		}
	}
	return c
}
