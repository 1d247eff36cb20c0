// Package stream reconstructs wildcard pattern occurrences from segment
// occurrences while the text is fed one byte at a time.
//
// Every time the automaton reports that a segment ending at pattern offset o
// ends at the current text position, the pattern anchored o bytes earlier
// gains one confirmed segment. When an anchor falls out of reach of any
// further segment, its count is compared with the number of segments: equal
// means every segment was found at its place, i.e. a match.
package stream

import (
	"github.com/andribas404/aho-corasick/automaton"
	"github.com/andribas404/aho-corasick/dfa/flat"
	"github.com/andribas404/aho-corasick/internal/conv"
)

// Automaton is the segment recogniser driven by a Matcher. It is satisfied
// by *automaton.Automaton, *automaton.DFA and *flat.DFA.
type Automaton interface {
	// Start returns the initial state.
	Start() automaton.StateID

	// Next returns the state after consuming c in state s.
	Next(s automaton.StateID, c byte) automaton.StateID

	// Outputs returns the end offsets of the segments recognised in s.
	Outputs(s automaton.StateID) []int32
}

// Matcher is the per-stream matching state. It is not safe for concurrent
// use; create one Matcher per stream from a shared Automaton.
type Matcher struct {
	a          Automaton
	patternLen int
	segments   int32

	// Non-nil when a is a *flat.DFA: Step then runs on the raw tables.
	table    []uint32
	outStart []int32
	out      []int32

	state  automaton.StateID
	pos    int
	window *Window
}

// New returns a Matcher for a pattern of patternLen bytes made of segments
// non-wildcard segments, recognised by a.
//
// With segments == 0 the pattern is all wildcards (or empty) and a is never
// consulted; it may be nil.
func New(a Automaton, patternLen, segments int) *Matcher {
	m := &Matcher{
		a:          a,
		patternLen: patternLen,
		segments:   conv.IntToInt32(segments),
	}
	if segments > 0 {
		m.window = NewWindow(patternLen)
		m.state = a.Start()
		if f, ok := a.(*flat.DFA); ok {
			m.table, m.outStart, m.out = f.Table()
		}
	}
	return m
}

// Step consumes the next text byte. It reports the anchor of a pattern
// occurrence that became decidable with this byte, if any. Anchors are
// reported at most once and in increasing order.
func (m *Matcher) Step(c byte) (anchor int, ok bool) {
	m.pos++

	if m.segments == 0 {
		switch {
		case m.patternLen == 0:
			return m.pos - 1, true
		case m.pos < m.patternLen:
			return 0, false
		default:
			return m.pos - m.patternLen, true
		}
	}

	if m.table != nil {
		m.state = automaton.StateID(m.table[uint32(m.state)+uint32(c)])
		for j := m.outStart[m.state>>8]; m.out[j] != flat.EndOfList; j++ {
			m.confirm(m.out[j])
		}
	} else {
		m.state = m.a.Next(m.state, c)
		for _, o := range m.a.Outputs(m.state) {
			m.confirm(o)
		}
	}

	if m.pos < m.patternLen {
		return 0, false
	}
	anchor = m.pos - m.patternLen
	return anchor, m.window.Slide(anchor) == m.segments
}

// confirm credits the anchor at which a segment ending at pattern offset o
// must start the pattern.
func (m *Matcher) confirm(o int32) {
	if anchor := m.pos - int(o) - 1; anchor >= 0 {
		m.window.Add(anchor)
	}
}

// Feed consumes p and calls emit for every reported anchor.
func (m *Matcher) Feed(p []byte, emit func(anchor int)) {
	for _, c := range p {
		if anchor, ok := m.Step(c); ok {
			emit(anchor)
		}
	}
}

// Pos returns the number of bytes consumed so far.
func (m *Matcher) Pos() int {
	return m.pos
}

// Reset returns the matcher to its initial state so it can serve a new
// stream.
func (m *Matcher) Reset() {
	m.pos = 0
	if m.window != nil {
		m.window.Reset()
		m.state = m.a.Start()
	}
}
