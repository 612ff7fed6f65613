package tower

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlusOne(t *testing.T) {
	type args struct {
		x *Int
	}
	tests := []struct {
		name string
		args args
		want *Int
	}{
		{
			name: "zero to one",
			args: args{New(0)},
			want: New(1),
		},
		{
			name: "word increment",
			args: args{New(41)},
			want: New(42),
		},
		{
			name: "saturated word escalates to 2^64",
			args: args{New(math.MaxUint64)},
			want: Exp2(New(64)),
		},
		{
			name: "large with clear bit zero",
			args: args{Exp2(New(64))},
			want: Add(Exp2(New(64)), New(1)),
		},
		{
			name: "large with set bit zero cascades",
			args: args{Add(Exp2(New(64)), New(1))},
			want: Add(Exp2(New(64)), New(2)),
		},
		{
			name: "cascade across a low run of ones",
			args: args{Add(Exp2(New(64)), New(7))},
			want: Add(Exp2(New(64)), New(8)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.args.x.PlusOne()
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestAddWordOverflowEscalates(t *testing.T) {
	got := Add(New(math.MaxUint64), New(1))
	require.False(t, got.IsSmall())
	pos := got.Positions()
	require.Len(t, pos, 1)
	assert.True(t, pos[0].EqualUint64(64))
	assert.True(t, got.Equal(Exp2(New(64))))
}

func TestAddCarryChains(t *testing.T) {
	// doubling a value shifts every position up by one; both additions
	// carry
	x := Add(Exp2(New(64)), Exp2(New(65)))
	got := Add(x, x)
	want := Add(Exp2(New(65)), Exp2(New(66)))
	assert.True(t, got.Equal(want), "got %v want %v", got, want)
}

func TestAddMatchesBigInt(t *testing.T) {
	vs := convertibleSamples()
	for _, x := range vs {
		for _, y := range vs {
			got, err := Add(x, y).Big()
			require.NoError(t, err)
			bx, err := x.Big()
			require.NoError(t, err)
			by, err := y.Big()
			require.NoError(t, err)
			want := new(big.Int).Add(bx, by)
			assert.Zero(t, got.Cmp(want), "%v + %v: got %s want %s", x, y, got, want)
		}
	}
}

// convertibleSamples is the subset of the sample grid that fits a big.Int.
func convertibleSamples() []*Int {
	out := make([]*Int, 0, 16)
	for _, v := range sampleValues() {
		if _, err := v.Big(); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func TestAddLaws(t *testing.T) {
	vs := sampleValues()
	zero := New(0)
	for _, x := range vs {
		assert.True(t, Add(x, zero).Equal(x), "x + 0 for %v", x)
		assert.True(t, Add(zero, x).Equal(x), "0 + x for %v", x)
		for _, y := range vs {
			assert.True(t, Add(x, y).Equal(Add(y, x)), "commutativity for %v, %v", x, y)
		}
	}
	// associativity on a smaller triple grid to keep the run time sane
	tri := []*Int{New(1), New(math.MaxUint64), Exp2(New(64)), Exp2(New(100)), Exp2(Exp2(New(100)))}
	for _, x := range tri {
		for _, y := range tri {
			for _, z := range tri {
				l := Add(Add(x, y), z)
				r := Add(x, Add(y, z))
				assert.True(t, l.Equal(r), "associativity for %v, %v, %v", x, y, z)
			}
		}
	}
}
