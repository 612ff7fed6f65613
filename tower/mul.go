package tower

import "math/bits"

// Mul returns the numeric product of x and y.
//
// Beyond the word fast path the product is accumulated shift-and-add over
// the 1-bit positions of the sparser operand: x*y = Sum(x * 2^q) for q in
// positions(y).
func Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return smallCache[0]
	}
	if x.IsOne() {
		return y
	}
	if y.IsOne() {
		return x
	}
	if x.pos == nil && y.pos == nil {
		if hi, lo := bits.Mul64(x.word, y.word); hi == 0 {
			return New(lo)
		}
	}
	if x.weight() < y.weight() {
		x, y = y, x
	}
	acc := smallCache[0]
	for _, q := range y.Positions() {
		acc = Add(acc, MulByExp2(x, q))
	}
	return acc
}
