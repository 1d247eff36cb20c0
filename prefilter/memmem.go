package prefilter

import (
	"github.com/andribas404/aho-corasick/segment"
	"github.com/andribas404/aho-corasick/simd"
)

// memmemPrefilter searches for a single segment.
//
// The first occurrence of the pattern contains seg at anchor+seg.Start(),
// which cannot precede the first occurrence of seg in the haystack.
type memmemPrefilter struct {
	seg segment.Segment
}

func newMemmem(seg segment.Segment) *memmemPrefilter {
	return &memmemPrefilter{seg: seg}
}

// Lower implements Prefilter.
func (p *memmemPrefilter) Lower(haystack []byte) (int, bool) {
	idx := simd.Memmem(haystack, p.seg.Bytes)
	if idx < 0 {
		return 0, false
	}
	return clampLower(idx - p.seg.Start()), true
}

// HeapBytes implements Prefilter.
func (p *memmemPrefilter) HeapBytes() int {
	return 0
}
