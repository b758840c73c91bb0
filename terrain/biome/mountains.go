package biome

import "github.com/go-gl/mathgl/mgl64"

// Mountains produce the tallest, most noise-sensitive columns and expose an
// explicit rock layering below the surface.
type Mountains struct{}

func (Mountains) ID() ID {
	return IDMountains
}

func (Mountains) Palette() Palette {
	return Palette{
		Top:  rgb(0x9aa0a6),
		Mid:  rgb(0x7d8287),
		Deep: rgb(0x55595e),
	}
}

func (Mountains) Stack() Stack {
	return Stack{
		BaseHeight:      3,
		HeightVariation: 4,
		Layers: []mgl64.Vec3{
			rgb(0x8a8f94),
			rgb(0x7d8287),
			rgb(0x6b7075),
			rgb(0x55595e),
		},
	}
}

func (m Mountains) ColumnHeight(elevation int, n float64) int {
	s := m.Stack()
	return atLeast(int(float64(elevation)/1.5)+s.BaseHeight+int(n*s.HeightVariation), 2)
}
