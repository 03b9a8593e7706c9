// internal/registers/encode.go
package registers

import (
	"errors"
	"fmt"
)

// ErrRange is returned when a value cannot be represented in its field.
var ErrRange = errors.New("registers: value out of range")

// Encode is the inverse of Decode: one value per logical field is laid out
// into big-endian registers using the same index sets.
//
// Signed single registers cover -32767..32767; signed double-width fields
// cover -0x7FFFFFFF..0x7FFFFFFF.
func Encode(values []int64, doubleWidth, signed IndexSet) ([]byte, error) {
	var regs []uint16

	for k, v := range values {
		r := len(regs)

		if !doubleWidth.Has(r) {
			w, err := encodeWord(v, signed.Has(r))
			if err != nil {
				return nil, fmt.Errorf("field %d: %w", k, err)
			}
			regs = append(regs, w)
			continue
		}

		lo, hi, err := encodeDouble(v, signed.Has(r))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", k, err)
		}
		regs = append(regs, lo, hi)
	}

	buf := make([]byte, 2*len(regs))
	for i, w := range regs {
		buf[2*i] = byte(w >> 8)
		buf[2*i+1] = byte(w)
	}
	return buf, nil
}

func encodeWord(v int64, signed bool) (uint16, error) {
	switch {
	case !signed && v >= 0 && v <= 0xFFFF:
		return uint16(v), nil
	case signed && v >= 0 && v <= signMask:
		return uint16(v), nil
	case signed && v < 0 && -v <= signMask:
		return uint16(0xFFFF + v), nil
	}
	return 0, fmt.Errorf("%w: %d (signed=%t)", ErrRange, v, signed)
}

func encodeDouble(v int64, signed bool) (lo, hi uint16, err error) {
	const max32 = 0xFFFFFFFF

	var c int64
	switch {
	case !signed && v >= 0 && v <= max32:
		c = v
	case signed && v >= 0 && v <= 0x7FFFFFFF:
		c = v
	case signed && v < 0 && -v <= 0x7FFFFFFF:
		c = max32 + v
	default:
		return 0, 0, fmt.Errorf("%w: %d (signed=%t, double)", ErrRange, v, signed)
	}
	return uint16(c & 0xFFFF), uint16(c >> 16), nil
}
