// Package sparse provides a sparse set of small unsigned integers.
//
// The automaton builder uses it to merge segment end offsets when output
// sets are propagated along failure links: membership and insertion are
// O(1), and clearing between states costs nothing regardless of capacity.
package sparse

import (
	"slices"

	"github.com/andribas404/aho-corasick/internal/conv"
)

// Set is a set of uint32 values in the range [0, capacity).
//
// The dense array keeps values in insertion order; the sparse array maps a
// value to its index in dense. Stale entries in sparse are harmless because
// every lookup cross-checks against dense.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates an empty set able to hold values below capacity.
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v and reports whether it was not already present.
// Panics if v >= Capacity().
func (s *Set) Insert(v uint32) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint32) bool {
	if uint64(v) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[v]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == v
}

// Clear removes all values in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no values.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Capacity returns the exclusive upper bound on storable values.
func (s *Set) Capacity() int {
	return len(s.sparse)
}

// Values returns the values in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// AppendSorted appends the values in ascending order to dst as int32 and
// returns the extended slice.
func (s *Set) AppendSorted(dst []int32) []int32 {
	start := len(dst)
	for _, v := range s.dense {
		dst = append(dst, conv.IntToInt32(int(v)))
	}
	slices.Sort(dst[start:])
	return dst
}
