package sequence

import (
	"errors"
	"iter"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/zeebo/errs"

	"github.com/VladimirReshetnikov/go-towercount/tower"
)

// Error is the default error class for the sequence package.
var Error = errs.Class("sequence")

var ErrInvalidIndex = errors.New("term index must be positive")

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithLogger attaches a logger used for per-size progress reporting.
func WithLogger(log logger.Logger) Option {
	return func(e *Enumerator) { e.log = log }
}

// Enumerator lazily computes and caches, per expression size, the set of
// distinct values of parenthesized power towers of twos. It is not safe
// for concurrent use; create one instance per computation.
type Enumerator struct {
	log logger.Logger
	// sizes[n] is the completed set for size n; index 0 is unused
	sizes []*valueSet
	err   error
}

// New returns an Enumerator seeded with the size-1 set {2}.
func New(opts ...Option) *Enumerator {
	seed := newValueSet()
	seed.add(tower.New(2))
	e := &Enumerator{sizes: []*valueSet{nil, seed}}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ValuesOfSize returns the distinct values of size-n expressions, in a
// deterministic construction order. The returned slice is owned by the
// cache and must not be modified. Fails with ErrInvalidIndex for n <= 0.
func (e *Enumerator) ValuesOfSize(n int) ([]*tower.Int, error) {
	s, err := e.valuesOfSize(n)
	if err != nil {
		return nil, err
	}
	return s.values, nil
}

func (e *Enumerator) valuesOfSize(n int) (*valueSet, error) {
	if n <= 0 {
		return nil, Error.Wrap(ErrInvalidIndex)
	}
	if n < len(e.sizes) && e.sizes[n] != nil {
		return e.sizes[n], nil
	}
	set := newValueSet()
	for i := 1; i < n; i++ {
		bases, err := e.valuesOfSize(i)
		if err != nil {
			return nil, err
		}
		exps, err := e.valuesOfSize(n - i)
		if err != nil {
			return nil, err
		}
		for _, base := range bases.values {
			for _, exp := range exps.values {
				v, err := tower.Power(base, exp)
				if err != nil {
					// bases are powers of two by construction
					return nil, Error.Wrap(err)
				}
				set.add(v)
			}
		}
	}
	for len(e.sizes) <= n {
		e.sizes = append(e.sizes, nil)
	}
	e.sizes[n] = set
	if e.log != nil {
		e.log.Debugf("size %d: %d distinct values", n, set.len())
	}
	return set, nil
}

// A returns a(n), the count of distinct values of size-n expressions.
// Fails with ErrInvalidIndex for n <= 0.
func (e *Enumerator) A(n int) (int, error) {
	s, err := e.valuesOfSize(n)
	if err != nil {
		return 0, err
	}
	return s.len(), nil
}

// Terms yields (n, a(n)) for n = 1, 2, ... without bound, computing terms
// on demand. Ranging again restarts from 1 and replays cached sets. If a
// term cannot be computed the iteration stops and Err reports the cause.
func (e *Enumerator) Terms() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for n := 1; ; n++ {
			an, err := e.A(n)
			if err != nil {
				e.err = err
				return
			}
			if !yield(n, an) {
				return
			}
		}
	}
}

// Err returns the first error that terminated a Terms iteration, if any.
func (e *Enumerator) Err() error { return e.err }
