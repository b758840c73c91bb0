// Package biome defines the board's biomes together with the colour palette
// and column height behaviour attached to each.
package biome

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/maps"
)

// ID identifies a biome on a board tile.
type ID uint8

const (
	IDPlains ID = iota
	IDForest
	IDDesert
	IDMountains
	IDSnowy
	IDSwamp
	IDOcean
)

// Palette is the colour triple a biome paints its columns with, from the
// surface downward.
type Palette struct {
	Top, Mid, Deep mgl64.Vec3
}

// Stack describes how a biome shapes its columns: the base column height in
// blocks, the magnitude of noise-driven height variation and, when not
// empty, explicit sub-surface colours indexed by distance below the surface
// layer. Biomes without Layers fall back to depth-fraction palette blending.
type Stack struct {
	BaseHeight      int
	HeightVariation float64
	Layers          []mgl64.Vec3
}

// Biome groups the static data and height behaviour of one biome.
type Biome interface {
	ID() ID
	Palette() Palette
	Stack() Stack
	// ColumnHeight converts a tile elevation (0-10) and a fractal noise
	// sample in [0, 1) into a column height in blocks. Implementations never
	// return less than 1.
	ColumnHeight(elevation int, n float64) int
}

var biomes = map[ID]Biome{
	IDPlains:    Plains{},
	IDForest:    Forest{},
	IDDesert:    Desert{},
	IDMountains: Mountains{},
	IDSnowy:     Snowy{},
	IDSwamp:     Swamp{},
	IDOcean:     Ocean{},
}

// ByID returns the biome registered for id. IDs outside the board's biome
// set fall back to plains so that tiles from newer board versions still
// render.
func ByID(id ID) Biome {
	if b, ok := biomes[id]; ok {
		return b
	}
	return Plains{}
}

// All returns every registered biome, sorted by ID.
func All() []Biome {
	ids := maps.Keys(biomes)
	slices.Sort(ids)
	all := make([]Biome, 0, len(ids))
	for _, id := range ids {
		all = append(all, biomes[id])
	}
	return all
}
