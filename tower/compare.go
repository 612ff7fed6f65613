package tower

// Compare orders by numeric value, returning -1, 0 or 1.
//
// Small words compare directly. A Small value is strictly below any Large
// value - canonical form guarantees Large values exceed the word range.
// Large values compare their position sequences from the highest position
// downward; at the first difference the larger position decides, and when
// one sequence is a suffix of the other the longer one carries additional
// lower bits and is greater. The recursion bottoms out at Small positions because
// positions are strictly smaller in magnitude than the value they encode.
func (x *Int) Compare(y *Int) int {
	if x == y {
		return 0
	}
	if x.pos == nil && y.pos == nil {
		switch {
		case x.word < y.word:
			return -1
		case x.word > y.word:
			return 1
		}
		return 0
	}
	if x.pos == nil {
		return -1
	}
	if y.pos == nil {
		return 1
	}
	if len(x.pos) == len(y.pos) && &x.pos[0] == &y.pos[0] {
		// same shared sequence
		return 0
	}
	i, j := len(x.pos)-1, len(y.pos)-1
	for i >= 0 && j >= 0 {
		if c := x.pos[i].Compare(y.pos[j]); c != 0 {
			return c
		}
		i--
		j--
	}
	switch {
	case i >= 0:
		return 1
	case j >= 0:
		return -1
	}
	return 0
}

// Equal reports whether x and y have the same numeric value.
func (x *Int) Equal(y *Int) bool { return x.Compare(y) == 0 }

// Less reports whether x is numerically below y.
func (x *Int) Less(y *Int) bool { return x.Compare(y) < 0 }

// CompareUint64 compares x against the word w. A word equals x only when x
// is Small with that value.
func (x *Int) CompareUint64(w uint64) int {
	if x.pos != nil {
		return 1
	}
	switch {
	case x.word < w:
		return -1
	case x.word > w:
		return 1
	}
	return 0
}

// EqualUint64 reports whether x is the Small value w.
func (x *Int) EqualUint64(w uint64) bool { return x.pos == nil && x.word == w }
