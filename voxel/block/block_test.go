package block

import "testing"

func TestRegistryComplete(t *testing.T) {
	t.Parallel()

	for k := Kind(0); k < kindCount; k++ {
		props := Of(k)
		if props.Name == "" {
			t.Errorf("kind %d has no registry entry", k)
		}
		for ch, v := range props.Color {
			if v < 0 || v > 1 {
				t.Errorf("kind %v channel %d = %v, want [0, 1]", k, ch, v)
			}
		}
	}
}

// TestUnknownKindFallsBack checks the degrade-gracefully policy: a kind from
// a newer board version renders grey instead of failing.
func TestUnknownKindFallsBack(t *testing.T) {
	t.Parallel()

	props := Of(Kind(200))
	if props.Color != FallbackColor {
		t.Errorf("unknown kind colour %v, want fallback %v", props.Color, FallbackColor)
	}
	if props.Feature || props.OverridesPalette {
		t.Error("unknown kinds must carry no behaviour flags")
	}
}

func TestFeatureFlags(t *testing.T) {
	t.Parallel()

	features := []Kind{Wood, Leaves, FlowerRed, FlowerYellow, MushroomRed, MushroomBrown, Cactus, SugarCane, DeadBush, Torch}
	for _, k := range features {
		if !Of(k).Feature {
			t.Errorf("%v must be a feature kind", k)
		}
	}
	for _, k := range []Kind{Grass, Dirt, Stone, Sand, Water, CoalOre} {
		if Of(k).Feature {
			t.Errorf("%v must not be a feature kind", k)
		}
	}
}

func TestOverrideFlags(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{CoalOre, IronOre, GoldOre, DiamondOre, Ice, CraftingTable, Furnace, Planks} {
		if !Of(k).OverridesPalette {
			t.Errorf("%v must bypass biome palette blending", k)
		}
	}
	for _, k := range []Kind{Grass, Dirt, Water, Snow} {
		if Of(k).OverridesPalette {
			t.Errorf("%v must be biome tinted", k)
		}
	}
}
