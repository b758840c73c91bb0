package biome

// deepWaterElevation is the elevation at or below which ocean tiles count as
// deep water.
const deepWaterElevation = 2

// Ocean columns ignore noise entirely: deep water renders as a single block,
// shallow water as two.
type Ocean struct{}

func (Ocean) ID() ID {
	return IDOcean
}

func (Ocean) Palette() Palette {
	return Palette{
		Top:  rgb(0x3b6ec9),
		Mid:  rgb(0x2f58a3),
		Deep: rgb(0x23417a),
	}
}

func (Ocean) Stack() Stack {
	return Stack{BaseHeight: 1, HeightVariation: 0}
}

func (Ocean) ColumnHeight(elevation int, _ float64) int {
	if elevation <= deepWaterElevation {
		return 1
	}
	return 2
}
