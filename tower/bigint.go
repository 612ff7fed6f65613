package tower

import (
	"math"
	"math/big"
	"strings"
)

// Conversion surface for tests and debugging. A tower integer is only
// convertible while every bit position fits a signed 32 bit integer, the
// range big.Int.SetBit can address.

// Big converts x to a conventional arbitrary precision integer, or fails
// with ErrTooLargeForBigInt when a position exceeds the int32 range.
func (x *Int) Big() (*big.Int, error) {
	if x.pos == nil {
		return new(big.Int).SetUint64(x.word), nil
	}
	z := new(big.Int)
	for _, p := range x.pos {
		if p.pos != nil || p.word > math.MaxInt32 {
			return nil, Error.Wrap(ErrTooLargeForBigInt)
		}
		z.SetBit(z, int(p.word), 1)
	}
	return z, nil
}

// FromBig converts a conventional big integer to a tower integer. Negative
// inputs fail with ErrNegativeValue.
func FromBig(b *big.Int) (*Int, error) {
	if b.Sign() < 0 {
		return nil, Error.Wrap(ErrNegativeValue)
	}
	if b.IsUint64() {
		return New(b.Uint64()), nil
	}
	pos := make([]*Int, 0, 64)
	for i := 0; i < b.BitLen(); i++ {
		if b.Bit(i) == 1 {
			pos = append(pos, New(uint64(i)))
		}
	}
	return newFromPositions(pos), nil
}

// DecimalString renders x in invariant decimal form. It fails with
// ErrTooLargeForBigInt when x does not fit a conventional big integer.
func (x *Int) DecimalString() (string, error) {
	b, err := x.Big()
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// ParseDecimal parses a non-negative decimal integer literal, with
// optional surrounding space. Signs, radix prefixes and empty input fail
// with ErrParse.
func ParseDecimal(s string) (*Int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, Error.Wrap(ErrParse)
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return nil, Error.Wrap(ErrParse)
		}
	}
	b, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return nil, Error.Wrap(ErrParse)
	}
	return FromBig(b)
}
