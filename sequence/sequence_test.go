package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VladimirReshetnikov/go-towercount/tower"
)

// The leading terms of A002845.
var knownTerms = []int{1, 1, 1, 2, 4, 8, 17, 36, 78, 171, 379, 851, 1928}

// The continuation through a(20), exercised only in long runs.
var extendedTerms = []int{4396, 10087, 23273, 53948, 125608, 293543, 688366}

func TestKnownTerms(t *testing.T) {
	e := New()
	for i, want := range knownTerms {
		n := i + 1
		got, err := e.A(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "a(%d)", n)
	}
}

func TestKnownTermsExtended(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping the a(14)..a(20) scenario in short mode")
	}
	e := New()
	for i, want := range extendedTerms {
		n := len(knownTerms) + i + 1
		got, err := e.A(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "a(%d)", n)
	}
}

func TestAInvalidIndex(t *testing.T) {
	e := New()
	for _, n := range []int{0, -1, -100} {
		_, err := e.A(n)
		require.Error(t, err, "a(%d)", n)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	}
}

func TestValuesOfSizeOne(t *testing.T) {
	e := New()
	vs, err := e.ValuesOfSize(1)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.True(t, vs[0].EqualUint64(2))
}

func TestValuesOfSizeFour(t *testing.T) {
	// the four-two towers collapse to exactly {256, 65536}
	e := New()
	vs, err := e.ValuesOfSize(4)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	got := map[uint64]bool{}
	for _, v := range vs {
		w, ok := v.Uint64()
		require.True(t, ok, "size-4 values fit a word, got %v", v)
		got[w] = true
	}
	assert.True(t, got[256])
	assert.True(t, got[65536])
}

func TestValuesAreDistinctAndPowersOfTwo(t *testing.T) {
	e := New()
	for n := 1; n <= 8; n++ {
		vs, err := e.ValuesOfSize(n)
		require.NoError(t, err)
		for i, v := range vs {
			_, err := tower.Log2(v)
			require.NoError(t, err, "size %d value %v", n, v)
			for _, w := range vs[i+1:] {
				assert.False(t, v.Equal(w), "size %d has a duplicate %v", n, v)
			}
		}
	}
}

func TestCacheIsStableAcrossCalls(t *testing.T) {
	e := New()
	first, err := e.A(9)
	require.NoError(t, err)
	again, err := e.A(9)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	// the cached slice is returned as-is
	a, err := e.ValuesOfSize(9)
	require.NoError(t, err)
	b, err := e.ValuesOfSize(9)
	require.NoError(t, err)
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0])
}

func TestTerms(t *testing.T) {
	e := New()
	var got []int
	for n, an := range e.Terms() {
		got = append(got, an)
		if n == len(knownTerms) {
			break
		}
	}
	require.NoError(t, e.Err())
	assert.Equal(t, knownTerms, got)
}

func TestTermsRestartsFromOne(t *testing.T) {
	e := New()
	for n := range e.Terms() {
		if n == 5 {
			break
		}
	}
	var first int
	for n, an := range e.Terms() {
		first = an
		assert.Equal(t, 1, n)
		break
	}
	require.NoError(t, e.Err())
	assert.Equal(t, 1, first)
}

func TestEnumeratorsAreIndependent(t *testing.T) {
	a, b := New(), New()
	ga, err := a.A(7)
	require.NoError(t, err)
	gb, err := b.A(7)
	require.NoError(t, err)
	assert.Equal(t, 17, ga)
	assert.Equal(t, ga, gb)
}
