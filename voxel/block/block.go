// Package block holds the closed set of block kinds a board tile may carry,
// together with the static per-kind data that drives terrain colouring and
// surface feature placement.
package block

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies one of the board's block kinds.
type Kind uint8

const (
	Grass Kind = iota
	Dirt
	Stone
	Sand
	Snow
	Water
	Ice
	CoalOre
	IronOre
	GoldOre
	DiamondOre
	Planks
	CraftingTable
	Furnace
	Wood
	Leaves
	FlowerRed
	FlowerYellow
	MushroomRed
	MushroomBrown
	Cactus
	SugarCane
	DeadBush
	Torch

	kindCount
)

// Properties is the static registry entry of a block kind.
type Properties struct {
	// Name is the kind's display name.
	Name string
	// Color is the raw block colour before any biome tinting.
	Color mgl64.Vec3
	// OverridesPalette marks kinds whose rendered colour bypasses biome
	// palette blending entirely, such as ores, furniture and ice.
	OverridesPalette bool
	// Feature marks kinds that place a surface decoration on top of the
	// column instead of tinting its top layer.
	Feature bool
}

// FallbackColor is the colour returned for kinds missing from the registry
// (#808080). Lookups degrade to it instead of failing.
var FallbackColor = mgl64.Vec3{0x80 / 255.0, 0x80 / 255.0, 0x80 / 255.0}

var registry = [kindCount]Properties{
	Grass:         {Name: "grass", Color: rgb(0x7cba3d)},
	Dirt:          {Name: "dirt", Color: rgb(0x8b5a2b)},
	Stone:         {Name: "stone", Color: rgb(0x8f8f8f)},
	Sand:          {Name: "sand", Color: rgb(0xe7d8a8)},
	Snow:          {Name: "snow", Color: rgb(0xf2f6f9)},
	Water:         {Name: "water", Color: rgb(0x3b6ec9)},
	Ice:           {Name: "ice", Color: rgb(0xa8d0e6), OverridesPalette: true},
	CoalOre:       {Name: "coal_ore", Color: rgb(0x4a4a4a), OverridesPalette: true},
	IronOre:       {Name: "iron_ore", Color: rgb(0xd8af93), OverridesPalette: true},
	GoldOre:       {Name: "gold_ore", Color: rgb(0xe5c644), OverridesPalette: true},
	DiamondOre:    {Name: "diamond_ore", Color: rgb(0x63e8e0), OverridesPalette: true},
	Planks:        {Name: "planks", Color: rgb(0xb8945f), OverridesPalette: true},
	CraftingTable: {Name: "crafting_table", Color: rgb(0x99662f), OverridesPalette: true},
	Furnace:       {Name: "furnace", Color: rgb(0x6f6f6f), OverridesPalette: true},
	Wood:          {Name: "wood", Color: rgb(0x7a5230), Feature: true},
	Leaves:        {Name: "leaves", Color: rgb(0x3e8e41), Feature: true},
	FlowerRed:     {Name: "flower_red", Color: rgb(0xd63031), Feature: true},
	FlowerYellow:  {Name: "flower_yellow", Color: rgb(0xf6e58d), Feature: true},
	MushroomRed:   {Name: "mushroom_red", Color: rgb(0xeb4d4b), Feature: true},
	MushroomBrown: {Name: "mushroom_brown", Color: rgb(0xa0785a), Feature: true},
	Cactus:        {Name: "cactus", Color: rgb(0x2e8b57), Feature: true},
	SugarCane:     {Name: "sugar_cane", Color: rgb(0x9acd32), Feature: true},
	DeadBush:      {Name: "dead_bush", Color: rgb(0x8b7355), Feature: true},
	Torch:         {Name: "torch", Color: rgb(0xffa030), Feature: true},
}

// Of returns the registry entry of k. Unknown kinds yield a grey placeholder
// entry rather than an error: tiles from newer board versions should render
// as grey columns, not break the mesh.
func Of(k Kind) Properties {
	if int(k) >= len(registry) {
		return Properties{Name: "unknown", Color: FallbackColor}
	}
	return registry[k]
}

// ColorOf returns the raw colour of k, or FallbackColor for unknown kinds.
func ColorOf(k Kind) mgl64.Vec3 {
	return Of(k).Color
}

// String returns the display name of k.
func (k Kind) String() string {
	return Of(k).Name
}

func rgb(hex uint32) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(hex>>16&0xff) / 255,
		float64(hex>>8&0xff) / 255,
		float64(hex&0xff) / 255,
	}
}
