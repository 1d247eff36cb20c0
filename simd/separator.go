package simd

import (
	"encoding/binary"
	"math/bits"
)

// MaxSeparator is the largest byte value treated as a separator. Every
// control character and the space delimit tokens in the input stream.
const MaxSeparator = ' '

// IsSeparator reports whether b delimits tokens in the input stream.
func IsSeparator(b byte) bool {
	return b <= MaxSeparator
}

// IndexSeparator returns the index of the first byte <= MaxSeparator in
// data, or -1 if there is none.
func IndexSeparator(data []byte) int {
	n := len(data)
	idx := 0
	step := 8
	if wideLoop && n >= wideMin {
		step = 32
	}

	// hasless(x, 33): the lowest flagged byte is exact, borrows only
	// propagate towards higher bytes.
	const below = lo8 * (MaxSeparator + 1)
	for ; idx+step <= n; idx += step {
		for w := 0; w < step; w += 8 {
			x := binary.LittleEndian.Uint64(data[idx+w:])
			if z := (x - below) & ^x & hi8; z != 0 {
				return idx + w + bits.TrailingZeros64(z)/8
			}
		}
	}

	for ; idx < n; idx++ {
		if data[idx] <= MaxSeparator {
			return idx
		}
	}
	return -1
}

// IndexNonSeparator returns the index of the first byte > MaxSeparator in
// data, or -1 if data consists of separators only.
func IndexNonSeparator(data []byte) int {
	n := len(data)
	idx := 0
	step := 8
	if wideLoop && n >= wideMin {
		step = 32
	}

	// hasmore(x, 32): adding 127-32 sets the high bit of every byte above
	// 32; OR with x covers bytes that already had it. Carries only move
	// upwards, so the lowest flagged byte is exact.
	const above = lo8 * (127 - MaxSeparator)
	for ; idx+step <= n; idx += step {
		for w := 0; w < step; w += 8 {
			x := binary.LittleEndian.Uint64(data[idx+w:])
			if z := ((x & ^hi8) + above | x) & hi8; z != 0 {
				return idx + w + bits.TrailingZeros64(z)/8
			}
		}
	}

	for ; idx < n; idx++ {
		if data[idx] > MaxSeparator {
			return idx
		}
	}
	return -1
}
