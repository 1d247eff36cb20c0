// Package conv provides checked integer narrowing for automaton tables.
//
// State identifiers and pattern offsets are stored in 32-bit form to keep the
// transition tables compact. A value that does not fit means the automaton
// exceeded its internal limits, which is a programming error, so these
// helpers panic instead of truncating.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow the constant.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToInt32 converts n to int32.
// Panics if n is outside the int32 range.
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}

// MulUint32 returns a*b, panicking if the product does not fit in uint32.
// Used to premultiply state ids by the table stride.
func MulUint32(a, b uint32) uint32 {
	p := uint64(a) * uint64(b)
	if p > math.MaxUint32 {
		panic("integer overflow: uint32 product out of range")
	}
	return uint32(p)
}
