package sequence

import "github.com/VladimirReshetnikov/go-towercount/tower"

// valueSet deduplicates tower integers by hash then exact comparison. The
// tower hash recurses into position hashes, so bucket chains stay short
// even though the values themselves cannot be used as map keys.
type valueSet struct {
	buckets map[uint64][]*tower.Int
	// values preserves insertion order for iteration by the size splits
	values []*tower.Int
}

func newValueSet() *valueSet {
	return &valueSet{buckets: make(map[uint64][]*tower.Int)}
}

// add inserts v unless an equal value is already present.
func (s *valueSet) add(v *tower.Int) bool {
	h := v.Hash()
	for _, w := range s.buckets[h] {
		if w.Equal(v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.values = append(s.values, v)
	return true
}

func (s *valueSet) len() int { return len(s.values) }
