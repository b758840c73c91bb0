package voxel

// PackedBuffers holds per-instance data laid out for GPU instanced drawing:
// three floats per block in each of Positions and Colors, in the same block
// order. It is the sole output handed to the renderer.
type PackedBuffers struct {
	Positions []float32
	Colors    []float32
	Count     int
}

// Pack flattens a block list into parallel position and colour arrays. The
// output always satisfies len(Positions) == len(Colors) == 3*Count.
func Pack(blocks []Block) PackedBuffers {
	p := PackedBuffers{
		Positions: make([]float32, 0, len(blocks)*3),
		Colors:    make([]float32, 0, len(blocks)*3),
		Count:     len(blocks),
	}
	for _, b := range blocks {
		p.Positions = append(p.Positions, float32(b.X), float32(b.Y), float32(b.Z))
		p.Colors = append(p.Colors, float32(b.Color[0]), float32(b.Color[1]), float32(b.Color[2]))
	}
	return p
}
