package biome

import "testing"

// TestColumnHeightFloor checks the height floor across every biome,
// elevation and a spread of noise inputs: land columns are never shorter
// than 2 blocks, ocean columns never shorter than 1.
func TestColumnHeightFloor(t *testing.T) {
	t.Parallel()

	for _, b := range All() {
		for elevation := 0; elevation <= 10; elevation++ {
			for _, n := range []float64{0, 0.25, 0.5, 0.999} {
				h := b.ColumnHeight(elevation, n)
				if h < 1 {
					t.Fatalf("biome %d: ColumnHeight(%d, %v) = %d, want >= 1", b.ID(), elevation, n, h)
				}
				if b.ID() != IDOcean && h < 2 {
					t.Fatalf("biome %d: ColumnHeight(%d, %v) = %d, want >= 2 for land biomes", b.ID(), elevation, n, h)
				}
			}
		}
	}
}

func TestOceanDepth(t *testing.T) {
	t.Parallel()

	o := Ocean{}
	for elevation := 0; elevation <= 10; elevation++ {
		want := 2
		if elevation <= deepWaterElevation {
			want = 1
		}
		if got := o.ColumnHeight(elevation, 0.5); got != want {
			t.Errorf("ocean height at elevation %d = %d, want %d", elevation, got, want)
		}
	}
}

// TestMountainsTallest verifies the intended ordering of the height
// formulas: at full elevation, mountains out-grow every other biome.
func TestMountainsTallest(t *testing.T) {
	t.Parallel()

	peak := Mountains{}.ColumnHeight(10, 0.9)
	for _, b := range All() {
		if b.ID() == IDMountains {
			continue
		}
		if h := b.ColumnHeight(10, 0.9); h > peak {
			t.Errorf("biome %d reaches %d blocks, above the mountain peak %d", b.ID(), h, peak)
		}
	}
}

func TestByIDFallback(t *testing.T) {
	t.Parallel()

	if got := ByID(ID(250)); got.ID() != IDPlains {
		t.Errorf("unknown biome ID resolved to %d, want plains fallback", got.ID())
	}
}

func TestAllSortedAndComplete(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 7 {
		t.Fatalf("expected 7 registered biomes, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID() >= all[i].ID() {
			t.Fatalf("All() not sorted by ID: %d before %d", all[i-1].ID(), all[i].ID())
		}
	}
}

// TestLayeredStacks checks that biomes exposing explicit sub-surface layers
// keep their channels renderable.
func TestLayeredStacks(t *testing.T) {
	t.Parallel()

	for _, b := range All() {
		for i, c := range b.Stack().Layers {
			for ch, v := range c {
				if v < 0 || v > 1 {
					t.Errorf("biome %d layer %d channel %d = %v, want [0, 1]", b.ID(), i, ch, v)
				}
			}
		}
	}
}
