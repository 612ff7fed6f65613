package tower

import "slices"

// Helpers over strictly sorted position sequences. Inputs are never
// mutated, so sequences can be shared freely across derived values; a
// changed sequence is always a fresh slice.

// removePosition returns a sequence equal to a with one occurrence of x
// removed and present=true, or a itself and present=false when x is
// absent. Binary search locates x; the copy is linear on a hit.
func removePosition(a []*Int, x *Int) (out []*Int, present bool) {
	i, ok := slices.BinarySearchFunc(a, x, (*Int).Compare)
	if !ok {
		return a, false
	}
	out = make([]*Int, 0, len(a)-1)
	out = append(out, a[:i]...)
	out = append(out, a[i+1:]...)
	return out, true
}

// insertPosition returns a strictly sorted sequence containing a and x.
// Inserting a position that is already present breaks a caller invariant
// and fails with ErrDuplicateInsert.
func insertPosition(a []*Int, x *Int) ([]*Int, error) {
	i, ok := slices.BinarySearchFunc(a, x, (*Int).Compare)
	if ok {
		return nil, Error.Wrap(ErrDuplicateInsert)
	}
	out := make([]*Int, 0, len(a)+1)
	out = append(out, a[:i]...)
	out = append(out, x)
	out = append(out, a[i:]...)
	return out, nil
}

// mustInsertPosition is for call sites that have just established absence.
// A failure here is a broken invariant and is fatal.
func mustInsertPosition(a []*Int, x *Int) []*Int {
	out, err := insertPosition(a, x)
	if err != nil {
		panic(err)
	}
	return out
}
