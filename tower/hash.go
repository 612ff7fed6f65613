package tower

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// Seeds for the Large hash so that a Large value never trivially collides
// with the Small value holding one of its position hashes.
const (
	positionsSeedLo = 0x9e3779b97f4a7c15
	positionsSeedHi = 0xbf58476d1ce4e5b9
)

// Hash returns a hash consistent with Equal: equal values hash equal.
// For Large values it is an order-sensitive combination of the recursive
// position hashes - the positions sequence is canonical, so no commutative
// mixing is needed.
func (x *Int) Hash() uint64 { return x.hash }

func hashWord(w uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], w)
	return murmur3.Sum64(b[:])
}

func hashPositions(pos []*Int) uint64 {
	b := make([]byte, 8*len(pos))
	for i, p := range pos {
		binary.LittleEndian.PutUint64(b[8*i:], p.hash)
	}
	return murmur3.SeedSum64(positionsSeedLo, positionsSeedHi, b)
}
