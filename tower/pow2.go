package tower

import "math/bits"

// Exp2 returns 2^x.
func Exp2(x *Int) *Int {
	if x.pos == nil && x.word < 64 {
		return New(1 << x.word)
	}
	// a single position at x; canonical because x is 64 or more
	return newFromPositions([]*Int{x})
}

// Log2 returns the base-2 logarithm of x. It is defined only when x is an
// exact power of two and fails with ErrNotPowerOfTwo otherwise.
func Log2(x *Int) (*Int, error) {
	if x.pos == nil {
		if !IsPow2(x.word) {
			return nil, Error.Wrap(ErrNotPowerOfTwo)
		}
		return New(Log2Uint64(x.word)), nil
	}
	if len(x.pos) != 1 {
		return nil, Error.Wrap(ErrNotPowerOfTwo)
	}
	return x.pos[0], nil
}

// MulByExp2 returns x * 2^k.
//
// Outside the word fast path every 1-bit position of x is shifted up by k.
// Adding the same k is strictly monotone, so the shifted sequence stays
// strictly sorted.
func MulByExp2(x, k *Int) *Int {
	if x.IsZero() || k.IsZero() {
		return x
	}
	if x.pos == nil && k.pos == nil && k.word <= uint64(bits.LeadingZeros64(x.word)) {
		return New(x.word << k.word)
	}
	pos := x.Positions()
	out := make([]*Int, len(pos))
	for i, p := range pos {
		out[i] = Add(p, k)
	}
	return newFromPositions(out)
}

// Power returns base^exp. The base must be an exact power of two; the
// result is then 2^(log2(base) * exp).
func Power(base, exp *Int) (*Int, error) {
	k, err := Log2(base)
	if err != nil {
		return nil, err
	}
	return Exp2(Mul(k, exp)), nil
}
