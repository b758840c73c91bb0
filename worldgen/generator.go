// Package worldgen produces board tile streams for the mesh pipeline. It is
// a reference implementation of the world generator a board renderer would
// normally supply: two perlin fields choose elevation and biome, and a
// hashed per-tile roll scatters surface blocks.
package worldgen

import (
	"github.com/aquilax/go-perlin"
	"github.com/tilemesh/tilemesh/terrain"
	"github.com/tilemesh/tilemesh/terrain/biome"
	"github.com/tilemesh/tilemesh/terrain/noise"
	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// Perlin smoothing and octave parameters for both fields.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Height thresholds selecting the elevation-bound biomes.
const (
	oceanMax      = 0.25
	mountainStart = 0.80
)

// blockRollSeedOffset separates surface block scattering from the terrain
// noise streams.
const blockRollSeedOffset = 7

// Generator converts perlin height and biome fields into board tiles.
type Generator struct {
	// Seed drives both perlin fields and the surface block scattering.
	Seed int64
	// NoiseScale is the spatial frequency of the height field.
	NoiseScale float64
	// BiomeScale is the spatial frequency of the biome field. It is lower
	// than NoiseScale so biomes span many tiles.
	BiomeScale float64
	// ForestDensity is the chance of a tree on a plains tile.
	ForestDensity float64

	height *perlin.Perlin
	biomes *perlin.Perlin
}

// New returns a generator with the default field scales.
func New(seed int64) *Generator {
	return &Generator{
		Seed:          seed,
		NoiseScale:    0.05,
		BiomeScale:    0.02,
		ForestDensity: 0.05,
		height:        perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		biomes:        perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed+42),
	}
}

// Board generates a width×depth tile board anchored at the origin, row by
// row. The output is deterministic for a given generator configuration.
func (g *Generator) Board(width, depth int) []terrain.TileUpdate {
	tiles := make([]terrain.TileUpdate, 0, width*depth)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			tiles = append(tiles, terrain.TileUpdate{
				Pos:  voxel.TilePos{X: int32(x), Z: int32(z)},
				Tile: g.TileAt(x, z),
			})
		}
	}
	return tiles
}

// TileAt generates the tile at a board position.
func (g *Generator) TileAt(x, z int) terrain.Tile {
	h := (g.height.Noise2D(float64(x)*g.NoiseScale, float64(z)*g.NoiseScale) + 1) / 2
	bv := g.biomes.Noise2D(float64(x)*g.BiomeScale, float64(z)*g.BiomeScale)

	id := g.biomeFor(h, bv)
	elevation := int(h * 10)
	if elevation > 10 {
		elevation = 10
	}
	return terrain.Tile{Biome: id, Block: g.surfaceBlock(id, x, z), Elevation: elevation}
}

// biomeFor picks a biome from the tile's height and biome noise values.
// Height claims the extremes (ocean, mountains); the biome field divides the
// middle ground.
func (g *Generator) biomeFor(h, biomeValue float64) biome.ID {
	switch {
	case h < oceanMax:
		return biome.IDOcean
	case h > mountainStart:
		return biome.IDMountains
	}
	switch {
	case biomeValue < -0.45:
		return biome.IDDesert
	case biomeValue < -0.20:
		return biome.IDSwamp
	case biomeValue > 0.45:
		return biome.IDSnowy
	case biomeValue > 0.15:
		return biome.IDForest
	default:
		return biome.IDPlains
	}
}

// surfaceBlock scatters the surface block kinds of a biome using a hashed
// per-tile roll.
func (g *Generator) surfaceBlock(id biome.ID, x, z int) block.Kind {
	roll := noise.At(int64(x), int64(z), g.Seed+blockRollSeedOffset)
	switch id {
	case biome.IDOcean:
		return block.Water
	case biome.IDDesert:
		switch {
		case roll < 0.02:
			return block.Cactus
		case roll < 0.04:
			return block.DeadBush
		default:
			return block.Sand
		}
	case biome.IDMountains:
		switch {
		case roll < 0.02:
			return block.DiamondOre
		case roll < 0.05:
			return block.GoldOre
		case roll < 0.10:
			return block.IronOre
		case roll < 0.17:
			return block.CoalOre
		default:
			return block.Stone
		}
	case biome.IDSnowy:
		if roll < 0.05 {
			return block.Ice
		}
		return block.Snow
	case biome.IDForest:
		switch {
		case roll < 0.15:
			return block.Wood
		case roll < 0.17:
			return block.MushroomRed
		case roll < 0.19:
			return block.MushroomBrown
		default:
			return block.Grass
		}
	case biome.IDSwamp:
		switch {
		case roll < 0.06:
			return block.SugarCane
		case roll < 0.10:
			return block.MushroomBrown
		default:
			return block.Dirt
		}
	default:
		switch {
		case roll < g.ForestDensity:
			return block.Wood
		case roll < g.ForestDensity+0.02:
			return block.FlowerRed
		case roll < g.ForestDensity+0.04:
			return block.FlowerYellow
		case roll < g.ForestDensity+0.05:
			return block.Torch
		default:
			return block.Grass
		}
	}
}
