// internal/registers/index.go
package registers

import "sort"

// IndexSet is an immutable set of positions into a register or value sequence.
type IndexSet map[int]struct{}

// Indices builds an IndexSet from positions.
func Indices(positions ...int) IndexSet {
	s := make(IndexSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set. A nil set is empty.
func (s IndexSet) Has(p int) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the positions in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
