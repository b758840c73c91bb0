package biome

// Desert columns are dune-shaped: their height comes mostly from noise, not
// elevation.
type Desert struct {
	sandy
}

func (Desert) ID() ID {
	return IDDesert
}

func (Desert) Palette() Palette {
	return Palette{
		Top:  rgb(0xe7d8a8),
		Mid:  rgb(0xd4bf8a),
		Deep: rgb(0xb59d6b),
	}
}
