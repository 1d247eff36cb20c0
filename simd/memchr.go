// Package simd provides byte-search primitives used on the hot paths of the
// wildcard matcher: splitting patterns on the wildcard byte, skipping
// separator runs in the input stream and locating a pattern segment in a
// haystack for prefiltering.
//
// All routines are pure Go and use the SWAR technique (SIMD Within A
// Register), testing eight bytes per uint64 operation. On CPUs that expose
// wide vector units the loops are unrolled to consume 32 bytes per
// iteration, which lets the compiler keep four independent words in flight.
package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wideLoop selects the 32-byte unrolled loops. Detected once at start-up.
var wideLoop = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)

	// wideMin is the input size below which the unrolled loop does not pay
	// for its setup.
	wideMin = 32
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("ab??aba"), '?')
//	// pos == 2
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}
	if wideLoop && len(haystack) >= wideMin {
		return memchrWide(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// memchrGeneric scans eight bytes at a time.
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask, matching bytes become 0x00
//  3. Detect a zero byte with (v - 0x01..) & ^v & 0x80..
//  4. The lowest set bit gives the first matching byte
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8

	idx := 0
	for ; idx+8 <= n; idx += 8 {
		x := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// memchrWide is memchrGeneric unrolled to four words per iteration.
func memchrWide(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8

	idx := 0
	for ; idx+32 <= n; idx += 32 {
		x0 := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
		x1 := binary.LittleEndian.Uint64(haystack[idx+8:]) ^ mask
		x2 := binary.LittleEndian.Uint64(haystack[idx+16:]) ^ mask
		x3 := binary.LittleEndian.Uint64(haystack[idx+24:]) ^ mask
		z0 := (x0 - lo8) & ^x0 & hi8
		z1 := (x1 - lo8) & ^x1 & hi8
		z2 := (x2 - lo8) & ^x2 & hi8
		z3 := (x3 - lo8) & ^x3 & hi8
		if z0|z1|z2|z3 == 0 {
			continue
		}
		switch {
		case z0 != 0:
			return idx + bits.TrailingZeros64(z0)/8
		case z1 != 0:
			return idx + 8 + bits.TrailingZeros64(z1)/8
		case z2 != 0:
			return idx + 16 + bits.TrailingZeros64(z2)/8
		default:
			return idx + 24 + bits.TrailingZeros64(z3)/8
		}
	}

	if idx == n {
		return -1
	}
	if pos := memchrGeneric(haystack[idx:], needle); pos >= 0 {
		return idx + pos
	}
	return -1
}
