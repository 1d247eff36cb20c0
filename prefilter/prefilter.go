// Package prefilter skips the part of a text that cannot contain the first
// occurrence of a wildcard pattern.
//
// Every occurrence of a pattern contains each of its segments at a fixed
// offset from the anchor. Locating one segment occurrence with a fast
// substring search therefore yields a lower bound for the first anchor, and
// a text that contains no segment at all cannot match.
//
// A prefilter is a pure function of the haystack and is safe for concurrent
// use.
package prefilter

import (
	"github.com/andribas404/aho-corasick/segment"
	"github.com/andribas404/aho-corasick/simd"
)

// Prefilter computes where matching may start.
type Prefilter interface {
	// Lower returns an anchor no greater than the anchor of the first
	// pattern occurrence in haystack. ok is false when haystack cannot
	// contain an occurrence at all.
	//
	// The returned anchor is in [0, len(haystack)] when ok is true.
	Lower(haystack []byte) (anchor int, ok bool)

	// HeapBytes returns the number of heap bytes retained by the prefilter.
	HeapBytes() int
}

// Kind identifies a prefilter implementation.
type Kind uint8

const (
	// KindNone means no prefilter is used.
	KindNone Kind = iota

	// KindMemmem searches for the rarest segment.
	KindMemmem

	// KindAhoCorasick searches for every distinct segment at once.
	KindAhoCorasick
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMemmem:
		return "memmem"
	case KindAhoCorasick:
		return "aho-corasick"
	default:
		return "unknown"
	}
}

// rareRank is the byte rank at or below which a segment is considered rare
// enough to search for alone, even when the pattern has other segments.
const rareRank = 160

// New builds the best prefilter for segs, or returns nil when segs is empty.
//
// A pattern with one distinct segment, or with a segment containing a
// rare byte, uses a memmem search for that segment. Otherwise every distinct
// segment is searched for at once with an Aho-Corasick automaton, falling
// back to memmem if the automaton cannot be built.
func New(segs []segment.Segment) Prefilter {
	if len(segs) == 0 {
		return nil
	}
	rarest := segs[segment.Rarest(segs)]
	distinct := segment.Distinct(segs)
	if len(distinct) == 1 {
		return newMemmem(rarest)
	}
	if rank, _ := simd.Rarity(rarest.Bytes); rank <= rareRank {
		return newMemmem(rarest)
	}
	if pf, err := newAhoCorasick(segs, distinct); err == nil {
		return pf
	}
	return newMemmem(rarest)
}

// KindOf reports the kind of pf.
func KindOf(pf Prefilter) Kind {
	switch pf.(type) {
	case *memmemPrefilter:
		return KindMemmem
	case *ahoCorasickPrefilter:
		return KindAhoCorasick
	default:
		return KindNone
	}
}

func clampLower(anchor int) int {
	return max(anchor, 0)
}
