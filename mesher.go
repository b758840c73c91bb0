// Package tilemesh turns board tile streams into instanced voxel mesh
// buffers: deterministic noise-driven column synthesis, surface features and
// flat position/colour arrays ready for GPU instancing.
package tilemesh

import (
	"fmt"
	"log/slog"

	"github.com/tilemesh/tilemesh/meshdb"
	"github.com/tilemesh/tilemesh/terrain"
	"github.com/tilemesh/tilemesh/voxel"
)

// Mesher builds packed mesh buffers from tile streams, optionally caching
// results between runs. A Mesher is safe for sequential reuse across many
// tile sets; the pipeline itself holds no state between calls.
type Mesher struct {
	log  *slog.Logger
	seed int64
	db   *meshdb.DB
}

// New creates a Mesher using fields of conf.
func (conf Config) New() (*Mesher, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	m := &Mesher{log: conf.Log, seed: conf.Seed}
	if conf.CacheDir != "" {
		db, err := meshdb.Open(conf.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("create mesh cache: %w", err)
		}
		m.db = db
	}
	return m, nil
}

// Seed returns the seed the Mesher builds terrain with.
func (m *Mesher) Seed() int64 {
	return m.seed
}

// Mesh builds the packed buffers and column height map for the tile set
// passed. Identical requests are served from the cache when one is
// configured; the height map is always recomputed, as callers need it for
// entity placement and it is cheap next to meshing.
func (m *Mesher) Mesh(tiles []terrain.TileUpdate, dimmed bool) (voxel.PackedBuffers, *voxel.HeightMap, error) {
	if m.db == nil {
		p, heights := terrain.Generate(tiles, dimmed, m.seed)
		return p, heights, nil
	}

	key := meshdb.Key(tiles, dimmed, m.seed)
	p, ok, err := m.db.Get(key)
	if err != nil {
		return voxel.PackedBuffers{}, nil, err
	}
	if ok {
		m.log.Debug("mesh cache hit", "key", key, "blocks", p.Count)
		return p, terrain.Heights(tiles, m.seed), nil
	}

	p, heights := terrain.Generate(tiles, dimmed, m.seed)
	if err := m.db.Put(key, p); err != nil {
		// A failed cache write costs a re-mesh on the next run, nothing
		// more.
		m.log.Warn("mesh cache write failed", "key", key, "error", err)
	}
	m.log.Debug("meshed tile set", "key", key, "tiles", len(tiles), "blocks", p.Count, "dimmed", dimmed)
	return p, heights, nil
}

// Close releases the cache database, if one was opened.
func (m *Mesher) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}
