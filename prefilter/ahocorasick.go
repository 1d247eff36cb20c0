package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/andribas404/aho-corasick/segment"
)

// ahoCorasickPrefilter searches for every distinct segment at once.
//
// For the reported segment occurrence [Start, End) and the first pattern
// occurrence at anchor p, the first segment of the pattern occupies
// [p+first.Start(), p+first.End+1). Whether the automaton reports the
// leftmost start or the earliest end, End-maxLen-first.Start() <= p holds,
// so the bound does not depend on its match semantics.
type ahoCorasickPrefilter struct {
	auto       *ahocorasick.Automaton
	maxLen     int
	firstStart int
	heap       int
}

func newAhoCorasick(segs, distinct []segment.Segment) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	heap := 0
	for _, s := range distinct {
		builder.AddPattern(s.Bytes)
		heap += len(s.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{
		auto:       auto,
		maxLen:     len(segs[segment.Longest(segs)].Bytes),
		firstStart: segs[0].Start(),
		heap:       heap,
	}, nil
}

// Lower implements Prefilter.
func (p *ahoCorasickPrefilter) Lower(haystack []byte) (int, bool) {
	m := p.auto.Find(haystack, 0)
	if m == nil {
		return 0, false
	}
	return clampLower(m.End - p.maxLen - p.firstStart), true
}

// HeapBytes implements Prefilter. The automaton's own tables are not
// visible and only the pattern bytes are counted.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.heap
}
