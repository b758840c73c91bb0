package populate

import (
	"math"
	"testing"

	"github.com/tilemesh/tilemesh/voxel"
	"github.com/tilemesh/tilemesh/voxel/block"
)

// TestTreeShape grows a tree on a column of height 3 and checks the contract
// of the feature: a 2-4 block trunk starting at the column top, a canopy
// strictly above the trunk, and leaf greens within the documented noise
// magnitude of the base leaf colour.
func TestTreeShape(t *testing.T) {
	t.Parallel()

	site := Site{Pos: voxel.TilePos{X: 5, Z: -3}, TopY: 3, Seed: 42069}
	blocks := Tree{}.Populate(nil, site)

	trunkColor := block.ColorOf(block.Wood)
	leafBase := block.ColorOf(block.Leaves)

	var trunk, canopy []voxel.Block
	for _, b := range blocks {
		if b.X == site.Pos.X && b.Z == site.Pos.Z && b.Color == trunkColor {
			trunk = append(trunk, b)
		} else {
			canopy = append(canopy, b)
		}
	}

	if len(trunk) < 2 || len(trunk) > 4 {
		t.Fatalf("trunk holds %d blocks, want 2-4", len(trunk))
	}
	for i, b := range trunk {
		if b.Y != int32(site.TopY+i) {
			t.Fatalf("trunk block %d at layer %d, want %d", i, b.Y, site.TopY+i)
		}
	}

	trunkTop := int32(site.TopY + len(trunk) - 1)
	if len(canopy) == 0 {
		t.Fatal("tree grew no canopy")
	}
	for _, b := range canopy {
		if b.Y <= trunkTop {
			t.Fatalf("canopy block at layer %d, not above trunk top %d", b.Y, trunkTop)
		}
		if diff := math.Abs(b.Color[1] - leafBase[1]); diff > LeafNoiseMagnitude+1e-9 {
			t.Errorf("canopy green channel off by %v, want <= %v", diff, LeafNoiseMagnitude)
		}
		if b.Color[0] != leafBase[0] || b.Color[2] != leafBase[2] {
			t.Errorf("canopy perturbation leaked outside the green channel")
		}
	}
}

// TestTreeDeterministic ensures a tree regrown at the same site is
// identical.
func TestTreeDeterministic(t *testing.T) {
	t.Parallel()

	site := Site{Pos: voxel.TilePos{X: -8, Z: 11}, TopY: 4, Seed: 7}
	a := Tree{}.Populate(nil, site)
	b := Tree{}.Populate(nil, site)
	if len(a) != len(b) {
		t.Fatalf("regrown tree has %d blocks, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("block %d differs between regrowths", i)
		}
	}
}

func TestSimpleFeatures(t *testing.T) {
	t.Parallel()

	site := Site{Pos: voxel.TilePos{X: 1, Z: 2}, TopY: 5, Seed: 1}

	for _, tc := range []struct {
		name   string
		kind   block.Kind
		blocks int
	}{
		{"torch", block.Torch, 1},
		{"dead bush", block.DeadBush, 1},
		{"standalone leaves", block.Leaves, 1},
		{"red flower", block.FlowerRed, 2},
		{"brown mushroom", block.MushroomBrown, 2},
		{"cactus", block.Cactus, 2},
		{"sugar cane", block.SugarCane, 2},
	} {
		p, ok := For(tc.kind)
		if !ok {
			t.Fatalf("%s: no populator registered", tc.name)
		}
		blocks := p.Populate(nil, site)
		if len(blocks) != tc.blocks {
			t.Fatalf("%s: placed %d blocks, want %d", tc.name, len(blocks), tc.blocks)
		}
		for i, b := range blocks {
			if b.X != site.Pos.X || b.Z != site.Pos.Z {
				t.Fatalf("%s: block %d strayed to (%d, %d)", tc.name, i, b.X, b.Z)
			}
			if b.Y != int32(site.TopY+i) {
				t.Fatalf("%s: block %d at layer %d, want %d", tc.name, i, b.Y, site.TopY+i)
			}
		}
	}
}

// TestFeatureDimming checks that every populator honours the fog-of-war
// dimming rule.
func TestFeatureDimming(t *testing.T) {
	t.Parallel()

	for kind, p := range populators {
		lit := p.Populate(nil, Site{Pos: voxel.TilePos{X: 2, Z: 2}, TopY: 3, Seed: 9})
		dim := p.Populate(nil, Site{Pos: voxel.TilePos{X: 2, Z: 2}, TopY: 3, Seed: 9, Dimmed: true})
		if len(lit) != len(dim) {
			t.Fatalf("kind %v: dimming changed block count", kind)
		}
		for i := range lit {
			for ch := 0; ch < 3; ch++ {
				want := lit[i].Color[ch] * voxel.DimFactor
				if math.Abs(dim[i].Color[ch]-want) > 1e-12 {
					t.Fatalf("kind %v block %d channel %d: %v, want %v", kind, i, ch, dim[i].Color[ch], want)
				}
			}
		}
	}
}

func TestForUnknownKind(t *testing.T) {
	t.Parallel()

	if _, ok := For(block.Stone); ok {
		t.Error("stone is not a feature kind and must have no populator")
	}
}
