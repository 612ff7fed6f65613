package tower

import (
	"strconv"
	"strings"
)

// debug utilities

// String renders Small values in decimal and Large values as a sum of
// powers of two with the highest position first, for example
// "2^(64)+2^(3)". The form is for diagnostics only and is never parsed.
func (x *Int) String() string {
	if x.pos == nil {
		return strconv.FormatUint(x.word, 10)
	}
	var sb strings.Builder
	for i := len(x.pos) - 1; i >= 0; i-- {
		if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString("2^(")
		sb.WriteString(x.pos[i].String())
		sb.WriteByte(')')
	}
	return sb.String()
}
