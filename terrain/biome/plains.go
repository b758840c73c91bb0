package biome

// Plains is the default grassland biome and the fallback for unknown IDs.
type Plains struct {
	grassy
}

func (Plains) ID() ID {
	return IDPlains
}

func (Plains) Palette() Palette {
	return Palette{
		Top:  rgb(0x7cbd6b),
		Mid:  rgb(0x8b6f47),
		Deep: rgb(0x6e6e6e),
	}
}
