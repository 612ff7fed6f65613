package tower

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the default error class for the tower package.
var Error = errs.Class("tower")

var (
	ErrNotPowerOfTwo     = errors.New("not an exact power of two")
	ErrDuplicateInsert   = errors.New("position already present in sorted sequence")
	ErrTooLargeForBigInt = errors.New("a bit position exceeds the int32 range")
	ErrNegativeValue     = errors.New("negative values cannot be represented")
	ErrParse             = errors.New("not a non-negative decimal integer")
)
