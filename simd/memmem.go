package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Equivalent to bytes.Index. The rarest byte of needle (by ByteRank) is
// located with Memchr and every candidate is verified in place, so the
// scan skips quickly over text that cannot contain the needle.
//
// Example:
//
//	pos := simd.Memmem([]byte("ababacaba"), []byte("aca"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	switch {
	case needleLen == 0:
		return 0
	case needleLen > haystackLen:
		return -1
	case needleLen == 1:
		return Memchr(haystack, needle[0])
	}

	rareIdx := RarestIndex(needle)
	rareByte := needle[rareIdx]

	// Candidates for the rare byte lie in [rareIdx, last].
	last := haystackLen - needleLen + rareIdx
	searchStart := rareIdx
	for searchStart <= last {
		pos := Memchr(haystack[searchStart:last+1], rareByte)
		if pos < 0 {
			return -1
		}
		candidate := searchStart + pos
		start := candidate - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = candidate + 1
	}
	return -1
}
