// internal/registers/prune.go
package registers

// Prune returns a fresh sequence without the listed positions.
// Positions refer to the input sequence; positions out of range are ignored.
func Prune[T any](values []T, positions IndexSet) []T {
	out := make([]T, 0, len(values))
	for i, v := range values {
		if positions.Has(i) {
			continue
		}
		out = append(out, v)
	}
	return out
}
