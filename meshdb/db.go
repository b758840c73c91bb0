// Package meshdb persists packed mesh buffers in a LevelDB database, so that
// large explored boards do not have to be re-meshed from scratch on every
// load. The cache is purely an optimisation: the pipeline works without one.
package meshdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/tilemesh/tilemesh/terrain"
	"github.com/tilemesh/tilemesh/voxel"
)

// recordVersion is bumped whenever the encoding below changes. Records with
// an unexpected version are treated as corrupt.
const recordVersion = 1

// ErrCorruptRecord is returned when a cached record cannot be decoded.
var ErrCorruptRecord = errors.New("meshdb: corrupt record")

// DB caches packed buffers keyed by the digest of the request that produced
// them.
type DB struct {
	ldb *leveldb.DB
}

// Open opens the mesh cache in dir, creating it if absent.
func Open(dir string) (*DB, error) {
	ldb, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open mesh cache: %w", err)
	}
	return &DB{ldb: ldb}, nil
}

// Key digests a mesh request. Identical (tiles, dimmed, seed) inputs always
// produce identical keys; the tile order is part of the digest.
func Key(tiles []terrain.TileUpdate, dimmed bool, seed int64) uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	_, _ = h.Write(buf[:])
	d := byte(0)
	if dimmed {
		d = 1
	}
	_, _ = h.Write([]byte{d})

	for _, tu := range tiles {
		binary.LittleEndian.PutUint64(buf[:], uint64(tu.Pos.Key()))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte{byte(tu.Tile.Biome), byte(tu.Tile.Block), byte(tu.Tile.Elevation)})
	}
	return h.Sum64()
}

// Get returns the buffers cached under key. The second return value is false
// when the key is absent; decoding failures are reported as errors.
func (db *DB) Get(key uint64) (voxel.PackedBuffers, bool, error) {
	data, err := db.ldb.Get(keyBytes(key), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		return voxel.PackedBuffers{}, false, nil
	case err != nil:
		return voxel.PackedBuffers{}, false, fmt.Errorf("read mesh cache: %w", err)
	}
	p, err := decode(data)
	if err != nil {
		return voxel.PackedBuffers{}, false, err
	}
	return p, true, nil
}

// Put stores the buffers under key, replacing any previous record.
func (db *DB) Put(key uint64, p voxel.PackedBuffers) error {
	if err := db.ldb.Put(keyBytes(key), encode(p), nil); err != nil {
		return fmt.Errorf("write mesh cache: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (db *DB) Close() error {
	return db.ldb.Close()
}

func keyBytes(key uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, key)
	return b
}

func encode(p voxel.PackedBuffers) []byte {
	data := make([]byte, 0, 5+len(p.Positions)*4+len(p.Colors)*4)
	data = append(data, recordVersion)
	data = binary.LittleEndian.AppendUint32(data, uint32(p.Count))
	for _, f := range p.Positions {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}
	for _, f := range p.Colors {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}
	return data
}

func decode(data []byte) (voxel.PackedBuffers, error) {
	if len(data) < 5 || data[0] != recordVersion {
		return voxel.PackedBuffers{}, ErrCorruptRecord
	}
	count := int(binary.LittleEndian.Uint32(data[1:5]))
	if len(data) != 5+count*24 {
		return voxel.PackedBuffers{}, ErrCorruptRecord
	}
	p := voxel.PackedBuffers{
		Positions: make([]float32, 0, count*3),
		Colors:    make([]float32, 0, count*3),
		Count:     count,
	}
	off := 5
	for i := 0; i < count*3; i++ {
		p.Positions = append(p.Positions, math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
		off += 4
	}
	for i := 0; i < count*3; i++ {
		p.Colors = append(p.Colors, math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
		off += 4
	}
	return p, nil
}
