package tower

import "math/bits"

// Int is an immutable non-negative integer of tower-like magnitude.
//
// The zero value of the struct is the number zero, but values must be
// obtained from New, FromBig, ParseDecimal or arithmetic on existing values
// so that the canonical form invariants hold.
type Int struct {
	word uint64
	// pos is nil exactly when the value is Small. For Large values it is the
	// strictly increasing, non-empty sequence of 1-bit positions. It is
	// shared, never mutated.
	pos  []*Int
	hash uint64
}

// smallCache interns the low words. Positions produced by bit scans of
// Small values land here, which keeps the recursive representation cheap.
var smallCache = func() []*Int {
	c := make([]*Int, 256)
	for i := range c {
		c[i] = &Int{word: uint64(i), hash: hashWord(uint64(i))}
	}
	return c
}()

// New returns the tower integer with the value of the word w.
func New(w uint64) *Int {
	if w < uint64(len(smallCache)) {
		return smallCache[w]
	}
	return &Int{word: w, hash: hashWord(w)}
}

// newFromPositions is the single construction funnel for position
// sequences. An empty sequence is zero. A sequence whose maximum position
// is a word below 64 is reassembled into the Small word - this downcast is
// what makes Small-vs-Large observable only through IsSmall and keeps the
// "Small < any Large" comparison rule sound.
//
// pos must be strictly sorted and duplicate free; it is retained without
// copying.
func newFromPositions(pos []*Int) *Int {
	if len(pos) == 0 {
		return smallCache[0]
	}
	if max := pos[len(pos)-1]; max.pos == nil && max.word < 64 {
		var w uint64
		for _, p := range pos {
			w |= 1 << p.word
		}
		return New(w)
	}
	return &Int{pos: pos, hash: hashPositions(pos)}
}

// IsSmall reports whether the value is stored as a 64 bit word.
func (x *Int) IsSmall() bool { return x.pos == nil }

// IsZero reports whether the value is zero.
func (x *Int) IsZero() bool { return x.pos == nil && x.word == 0 }

// IsOne reports whether the value is one.
func (x *Int) IsOne() bool { return x.pos == nil && x.word == 1 }

// Uint64 returns the stored word. ok is false for Large values, which by
// canonical form always exceed the word range.
func (x *Int) Uint64() (w uint64, ok bool) {
	if x.pos != nil {
		return 0, false
	}
	return x.word, true
}

// Positions returns the sorted sequence of 1-bit positions of x. For Small
// values the sequence is assembled on demand with a bit scan; for Large
// values the shared sequence is returned directly and must not be modified.
func (x *Int) Positions() []*Int {
	if x.pos != nil {
		return x.pos
	}
	out := make([]*Int, 0, bits.OnesCount64(x.word))
	for w := x.word; w != 0; w &= w - 1 {
		out = append(out, New(uint64(bits.TrailingZeros64(w))))
	}
	return out
}

// weight is the Hamming weight, the length of Positions.
func (x *Int) weight() int {
	if x.pos != nil {
		return len(x.pos)
	}
	return bits.OnesCount64(x.word)
}
