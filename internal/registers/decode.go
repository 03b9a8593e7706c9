// internal/registers/decode.go
package registers

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when a buffer does not fit the expected register layout.
var ErrMalformed = errors.New("registers: malformed response")

// signMask is the device sign threshold for a single register.
const signMask = 0x7FFF

// Decode turns a big-endian register buffer into one integer per logical field.
//
// doubleWidth and signed hold wire register indices. A double-width field
// consumes its register (low word) and the next one (high word).
//
// Signed registers above 0x7FFF are emitted as -(0xFFFF - v). This is the
// controller's own convention and is NOT two's complement: 0x8000 decodes to
// -32767 and 0xFFFF to 0. For signed double-width fields the high word carries
// the sign and both words are complemented the same way.
//
// Decode never mutates buf.
func Decode(buf []byte, doubleWidth, signed IndexSet) ([]int64, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformed, len(buf))
	}
	n := len(buf) / 2

	for i := range doubleWidth {
		if i < 0 || i+1 >= n {
			return nil, fmt.Errorf("%w: double-width register %d outside %d registers", ErrMalformed, i, n)
		}
		if doubleWidth.Has(i+1) || signed.Has(i+1) {
			return nil, fmt.Errorf("%w: register %d is the high word of register %d", ErrMalformed, i+1, i)
		}
	}
	for i := range signed {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: signed register %d outside %d registers", ErrMalformed, i, n)
		}
	}

	reg := func(i int) int64 {
		return int64(buf[2*i])<<8 | int64(buf[2*i+1])
	}

	out := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		lo := reg(i)

		if !doubleWidth.Has(i) {
			if signed.Has(i) && lo > signMask {
				out = append(out, -(0xFFFF - lo))
			} else {
				out = append(out, lo)
			}
			continue
		}

		hi := reg(i + 1)
		// 32-bit signed: the high word carries the sign and both words are complemented.
		if signed.Has(i) && hi > signMask {
			out = append(out, -((0xFFFF-hi)*0x10000 + (0xFFFF - lo)))
		} else {
			out = append(out, hi*0x10000+lo)
		}
		i++
	}

	return out, nil
}
