package biome

import "github.com/go-gl/mathgl/mgl64"

// grassy is embedded by biomes sharing the default grassland column shape:
// a gentle elevation slope over a low base with mild noise variation.
type grassy struct{}

func (grassy) Stack() Stack {
	return Stack{BaseHeight: 2, HeightVariation: 2}
}

func (g grassy) ColumnHeight(elevation int, n float64) int {
	s := g.Stack()
	return atLeast(int(float64(elevation)/2.5)+s.BaseHeight+int(n*s.HeightVariation), 2)
}

// sandy is embedded by dune-shaped biomes whose height comes mostly from
// noise rather than elevation.
type sandy struct{}

func (sandy) Stack() Stack {
	return Stack{BaseHeight: 2, HeightVariation: 3}
}

func (s sandy) ColumnHeight(elevation int, n float64) int {
	st := s.Stack()
	return atLeast(st.BaseHeight+elevation/4+int(n*st.HeightVariation), 2)
}

func atLeast(h, floor int) int {
	if h < floor {
		return floor
	}
	return h
}

func rgb(hex uint32) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(hex>>16&0xff) / 255,
		float64(hex>>8&0xff) / 255,
		float64(hex&0xff) / 255,
	}
}
