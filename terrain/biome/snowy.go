package biome

import "github.com/go-gl/mathgl/mgl64"

// Snowy columns carry a thin snow cover over frozen dirt and stone, exposed
// as an explicit layer table.
type Snowy struct{}

func (Snowy) ID() ID {
	return IDSnowy
}

func (Snowy) Palette() Palette {
	return Palette{
		Top:  rgb(0xf2f6f9),
		Mid:  rgb(0xc9d4dc),
		Deep: rgb(0x8d979e),
	}
}

func (Snowy) Stack() Stack {
	return Stack{
		BaseHeight:      2,
		HeightVariation: 1.5,
		Layers: []mgl64.Vec3{
			rgb(0xdbe4ea),
			rgb(0x9b8365),
			rgb(0x8d979e),
		},
	}
}

func (s Snowy) ColumnHeight(elevation int, n float64) int {
	st := s.Stack()
	return atLeast(int(float64(elevation)/2.2)+st.BaseHeight+int(n*st.HeightVariation), 2)
}
