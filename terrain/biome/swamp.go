package biome

// Swamp is the flattest biome: a shallow elevation slope and almost no noise
// contribution.
type Swamp struct{}

func (Swamp) ID() ID {
	return IDSwamp
}

func (Swamp) Palette() Palette {
	return Palette{
		Top:  rgb(0x5e6b3a),
		Mid:  rgb(0x4f4633),
		Deep: rgb(0x3c3a30),
	}
}

func (Swamp) Stack() Stack {
	return Stack{BaseHeight: 1, HeightVariation: 1}
}

func (s Swamp) ColumnHeight(elevation int, n float64) int {
	st := s.Stack()
	return atLeast(elevation/3+st.BaseHeight+int(n*st.HeightVariation), 2)
}
