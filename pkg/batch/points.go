package batch

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/geometry/pkg/geom"
)

// PointKey hashes the exact bit patterns of the coordinates. -0 and +0 are
// folded together so that equal points share a key.
func PointKey(p geom.Vector3) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(p.X+0))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y+0))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(p.Z+0))
	return xxhash.Sum64(buf[:])
}

// UniquePoints drops exact duplicates and keeps the first occurrence order.
func UniquePoints(points []geom.Vector3) []geom.Vector3 {
	seen := make(map[uint64][]geom.Vector3, len(points))
	out := make([]geom.Vector3, 0, len(points))

outer:
	for _, p := range points {
		key := PointKey(p)
		for _, q := range seen[key] {
			if q == p {
				continue outer
			}
		}
		seen[key] = append(seen[key], p)
		out = append(out, p)
	}
	return out
}
