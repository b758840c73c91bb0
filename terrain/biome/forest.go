package biome

// Forest shares the grassland column shape with a darker canopy-floor
// palette.
type Forest struct {
	grassy
}

func (Forest) ID() ID {
	return IDForest
}

func (Forest) Palette() Palette {
	return Palette{
		Top:  rgb(0x4f8a3d),
		Mid:  rgb(0x6d5537),
		Deep: rgb(0x5c5c5c),
	}
}
