// internal/registers/split.go
package registers

// Split16To8 splits every 16-bit value into its low byte followed by its high byte.
func Split16To8(values []uint16) []uint8 {
	out := make([]uint8, 0, 2*len(values))
	for _, v := range values {
		out = append(out, uint8(v&0xFF), uint8(v>>8&0xFF))
	}
	return out
}

// Join8To16 packs a low and high byte back into one register value.
func Join8To16(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// SplitAt rebuilds values with every listed position expanded into two
// entries (low byte, then high byte). Positions refer to the input sequence.
// The input is never mutated.
func SplitAt(values []int64, positions IndexSet) []int64 {
	out := make([]int64, 0, len(values)+len(positions))
	for i, v := range values {
		if !positions.Has(i) {
			out = append(out, v)
			continue
		}
		b := Split16To8([]uint16{uint16(v)})
		out = append(out, int64(b[0]), int64(b[1]))
	}
	return out
}
