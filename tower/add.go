package tower

import "math/bits"

// PlusOne returns x + 1.
func (x *Int) PlusOne() *Int {
	if x.pos == nil {
		if !AllOnes(x.word) {
			return New(x.word + 1)
		}
		// the word saturates; 2^64 is the first Large value
		return newFromPositions([]*Int{New(64)})
	}
	rest, present := removePosition(x.pos, smallCache[0])
	if !present {
		return newFromPositions(mustInsertPosition(x.pos, smallCache[0]))
	}
	// bit 0 was set, so the increment cascades: x + 1 == (x - 2^0) + 2^1.
	// Add resolves the tail of the cascade.
	return Add(newFromPositions(rest), Exp2(smallCache[1]))
}

// Add returns the numeric sum of x and y.
//
// Beyond the word fast path, addition merges the 1-bit positions of the
// smaller operand into those of the larger. A position collision is a
// carry: 2^q + 2^q = 2^(q+1), folded back through Add together with the
// not yet merged positions. The carry position strictly increases, so the
// recursion is well-founded.
func Add(x, y *Int) *Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.pos == nil && y.pos == nil {
		if sum, carry := bits.Add64(x.word, y.word, 0); carry == 0 {
			return New(sum)
		}
	}
	xs, ys := x.Positions(), y.Positions()
	if len(ys) > len(xs) {
		xs, ys = ys, xs
	}
	acc := xs
	for i, q := range ys {
		rest, present := removePosition(acc, q)
		if !present {
			acc = mustInsertPosition(acc, q)
			continue
		}
		sum := Add(newFromPositions(rest), Exp2(q.PlusOne()))
		return Add(sum, newFromPositions(ys[i+1:]))
	}
	return newFromPositions(acc)
}
