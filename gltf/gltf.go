// Package gltf writes packed mesh buffers as self-contained glTF 2.0
// documents carrying per-vertex positions and colours. The document embeds
// its binary buffer as a base64 data URI, so a single file holds the whole
// board.
package gltf

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/tilemesh/tilemesh/voxel"
)

// glTF constants from the 2.0 specification.
const (
	componentFloat = 5126
	typeVec3       = "VEC3"
	modePoints     = 0
)

type document struct {
	Asset       asset        `json:"asset"`
	Scene       int          `json:"scene"`
	Scenes      []scene      `json:"scenes"`
	Nodes       []node       `json:"nodes"`
	Meshes      []mesh       `json:"meshes"`
	Accessors   []accessor   `json:"accessors"`
	BufferViews []bufferView `json:"bufferViews"`
	Buffers     []buffer     `json:"buffers"`
}

type asset struct {
	Version   string      `json:"version"`
	Generator string      `json:"generator"`
	Extras    assetExtras `json:"extras"`
}

type assetExtras struct {
	ID string `json:"id"`
}

type scene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes"`
}

type node struct {
	Name string `json:"name,omitempty"`
	Mesh int    `json:"mesh"`
}

type mesh struct {
	Name       string      `json:"name,omitempty"`
	Primitives []primitive `json:"primitives"`
}

type primitive struct {
	Attributes map[string]int `json:"attributes"`
	Mode       int            `json:"mode"`
}

type accessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

type bufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
}

type buffer struct {
	ByteLength int    `json:"byteLength"`
	URI        string `json:"uri"`
}

// Write encodes the buffers passed as a glTF document with a single POINTS
// primitive and writes it to w. Each exported document carries a fresh asset
// identity.
func Write(w io.Writer, p voxel.PackedBuffers, name string) error {
	if len(p.Positions) != p.Count*3 || len(p.Colors) != p.Count*3 {
		return fmt.Errorf("gltf: inconsistent buffers: %d positions, %d colours for count %d", len(p.Positions), len(p.Colors), p.Count)
	}

	bin := make([]byte, 0, (len(p.Positions)+len(p.Colors))*4)
	for _, f := range p.Positions {
		bin = binary.LittleEndian.AppendUint32(bin, math.Float32bits(f))
	}
	for _, f := range p.Colors {
		bin = binary.LittleEndian.AppendUint32(bin, math.Float32bits(f))
	}

	posMin, posMax := bounds(p.Positions)
	posLen := len(p.Positions) * 4

	doc := document{
		Asset: asset{
			Version:   "2.0",
			Generator: "tilemesh",
			Extras:    assetExtras{ID: uuid.NewString()},
		},
		Scene:  0,
		Scenes: []scene{{Name: name, Nodes: []int{0}}},
		Nodes:  []node{{Name: name, Mesh: 0}},
		Meshes: []mesh{{
			Name: name,
			Primitives: []primitive{{
				Attributes: map[string]int{"POSITION": 0, "COLOR_0": 1},
				Mode:       modePoints,
			}},
		}},
		Accessors: []accessor{
			{BufferView: 0, ComponentType: componentFloat, Count: p.Count, Type: typeVec3, Min: posMin, Max: posMax},
			{BufferView: 1, ComponentType: componentFloat, Count: p.Count, Type: typeVec3},
		},
		BufferViews: []bufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: len(p.Colors) * 4},
		},
		Buffers: []buffer{{
			ByteLength: len(bin),
			URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(bin),
		}},
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gltf: encode document: %w", err)
	}
	return nil
}

// bounds returns the per-axis minimum and maximum of a flat VEC3 array, as
// required for POSITION accessors.
func bounds(floats []float32) (min, max []float32) {
	min = []float32{0, 0, 0}
	max = []float32{0, 0, 0}
	if len(floats) == 0 {
		return min, max
	}
	copy(min, floats[:3])
	copy(max, floats[:3])
	for i := 3; i+2 < len(floats); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := floats[i+axis]
			if v < min[axis] {
				min[axis] = v
			}
			if v > max[axis] {
				max[axis] = v
			}
		}
	}
	return min, max
}
