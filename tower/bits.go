package tower

import "math/bits"

// Word level helpers for the Small fast paths.

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// IsPow2 reports whether the word num is an exact power of two.
func IsPow2(num uint64) bool {
	return bits.OnesCount64(num) == 1
}

// AllOnes reports whether every bit of the 64 bit word is set.
func AllOnes(num uint64) bool {
	return ^num == 0
}
