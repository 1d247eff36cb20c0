// Package segment splits a wildcard pattern into its maximal runs of
// literal bytes.
//
// Each run is tagged with the pattern offset of its last byte. A full match
// at anchor p requires every segment s to occur in the text ending at
// p + s.End, which is how the stream matcher reassembles pattern
// occurrences from segment occurrences.
package segment

import (
	"github.com/andribas404/aho-corasick/simd"
)

// Wildcard is the default wildcard byte: it matches any single byte.
const Wildcard = '?'

// Segment is a maximal run of non-wildcard pattern bytes.
type Segment struct {
	// Bytes holds the literal bytes. Never empty.
	Bytes []byte

	// End is the 0-based pattern offset of the last byte of the run.
	End int
}

// Start returns the pattern offset of the first byte of the run.
func (s Segment) Start() int {
	return s.End - len(s.Bytes) + 1
}

// Len returns the number of bytes in the run.
func (s Segment) Len() int {
	return len(s.Bytes)
}

// String returns the segment bytes.
func (s Segment) String() string {
	return string(s.Bytes)
}

// Split decomposes pattern into its segments in left-to-right order.
//
// A pattern made only of wildcards, and the empty pattern, yield no
// segments. The returned segments alias pattern.
//
// Example:
//
//	segs := segment.Split([]byte("ab??aba"), '?')
//	// segs == [{ab 1} {aba 6}]
func Split(pattern []byte, wildcard byte) []Segment {
	var segs []Segment
	pos := 0
	for pos < len(pattern) {
		next := simd.Memchr(pattern[pos:], wildcard)
		end := len(pattern)
		if next >= 0 {
			end = pos + next
		}
		if end > pos {
			segs = append(segs, Segment{
				Bytes: pattern[pos:end:end],
				End:   end - 1,
			})
		}
		pos = end + 1
	}
	return segs
}

// TotalLen returns the summed length of all segments, an upper bound on
// the number of non-root automaton states.
func TotalLen(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += len(s.Bytes)
	}
	return n
}

// Longest returns the index of the longest segment, the leftmost one on
// ties, or -1 if segs is empty.
func Longest(segs []Segment) int {
	best := -1
	for i, s := range segs {
		if best < 0 || len(s.Bytes) > len(segs[best].Bytes) {
			best = i
		}
	}
	return best
}

// Rarest returns the index of the segment most likely to be rare in
// typical text: the one whose rarest byte has the lowest simd.ByteRank,
// preferring longer segments on ties. Returns -1 if segs is empty.
func Rarest(segs []Segment) int {
	best := -1
	var bestRank byte
	var bestLen int
	for i, s := range segs {
		rank, n := simd.Rarity(s.Bytes)
		if best < 0 || rank < bestRank || (rank == bestRank && n > bestLen) {
			best, bestRank, bestLen = i, rank, n
		}
	}
	return best
}

// Distinct returns the segments with pairwise different content, keeping
// the first occurrence of each.
func Distinct(segs []Segment) []Segment {
	seen := make(map[string]struct{}, len(segs))
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if _, ok := seen[string(s.Bytes)]; ok {
			continue
		}
		seen[string(s.Bytes)] = struct{}{}
		out = append(out, s)
	}
	return out
}
