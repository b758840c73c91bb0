package voxel

import "testing"

func TestHeightMapSetAndReplace(t *testing.T) {
	t.Parallel()

	h := NewHeightMap(4)
	pos := TilePos{X: 3, Z: -9}
	if _, ok := h.At(pos); ok {
		t.Fatal("empty map reports an entry")
	}
	h.Set(pos, 5)
	h.Set(pos, 7)
	if got, ok := h.At(pos); !ok || got != 7 {
		t.Fatalf("At = (%d, %v), want (7, true)", got, ok)
	}
	if h.Len() != 1 {
		t.Fatalf("Len = %d after replacing one position, want 1", h.Len())
	}
}

func TestHeightMapDefault(t *testing.T) {
	t.Parallel()

	h := NewHeightMap(1)
	if got := h.AtOrDefault(TilePos{X: 1, Z: 1}, 2); got != 2 {
		t.Fatalf("AtOrDefault on missing position = %d, want fallback 2", got)
	}
	h.Set(TilePos{X: 1, Z: 1}, 6)
	if got := h.AtOrDefault(TilePos{X: 1, Z: 1}, 2); got != 6 {
		t.Fatalf("AtOrDefault on present position = %d, want 6", got)
	}
}

// TestKeyDistinct checks the position packing used for map keys: positions
// that differ in either coordinate, including negatives, must not collide.
func TestKeyDistinct(t *testing.T) {
	t.Parallel()

	seen := map[int64]TilePos{}
	for x := int32(-16); x <= 16; x++ {
		for z := int32(-16); z <= 16; z++ {
			p := TilePos{X: x, Z: z}
			if prev, ok := seen[p.Key()]; ok {
				t.Fatalf("key collision between %v and %v", prev, p)
			}
			seen[p.Key()] = p
		}
	}
}

// TestMergeVisibleWins overlays a visible height map on an explored one and
// checks the visible entry wins on shared positions.
func TestMergeVisibleWins(t *testing.T) {
	t.Parallel()

	visible, explored := NewHeightMap(2), NewHeightMap(2)
	shared := TilePos{X: 0, Z: 0}
	explored.Set(shared, 3)
	explored.Set(TilePos{X: 1, Z: 0}, 4)
	visible.Set(shared, 6)
	visible.Set(TilePos{X: 0, Z: 1}, 2)

	merged := MergeHeightMaps(visible, explored)
	if merged.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3", merged.Len())
	}
	if got, _ := merged.At(shared); got != 6 {
		t.Fatalf("shared position = %d, want the visible height 6", got)
	}
	if got, _ := merged.At(TilePos{X: 1, Z: 0}); got != 4 {
		t.Fatalf("explored-only position = %d, want 4", got)
	}
	if got, _ := merged.At(TilePos{X: 0, Z: 1}); got != 2 {
		t.Fatalf("visible-only position = %d, want 2", got)
	}
}
