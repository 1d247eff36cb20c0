// Package automaton builds the multi-segment Aho-Corasick automaton that
// drives wildcard matching.
//
// Construction happens in three steps:
//  1. Builder.Insert adds every pattern segment to a trie kept in an arena
//     of states addressed by StateID
//  2. Builder.Build assigns failure links breadth-first and propagates the
//     segment end offsets along them, producing an Automaton
//  3. Automaton.Complete resolves every missing transition through the
//     failure links, producing a DFA with a dense row per state
//
// Automaton and DFA are immutable once built and safe for concurrent use.
// Both report, for a state, the sorted end offsets of every segment that
// ends at the current text position.
package automaton

import (
	"slices"

	"github.com/andribas404/aho-corasick/internal/conv"
	"github.com/andribas404/aho-corasick/segment"
)

// AlphabetSize is the number of distinct input symbols: one per byte value.
const AlphabetSize = 256

// StateID identifies an automaton state. The root is always 0.
type StateID uint32

// Root is the start state of every automaton.
const Root StateID = 0

// transition is a labelled trie edge.
type transition struct {
	label byte
	next  StateID
}

// state is a trie node. Edges are kept sorted by label so construction
// order, and therefore state numbering, is deterministic.
type state struct {
	trans []transition
	fail  StateID
	depth int32
	// out holds sorted, de-duplicated segment end offsets. Before Build it
	// holds only the offsets of segments ending exactly here.
	out []int32
}

func (s *state) lookup(c byte) (StateID, bool) {
	i, ok := slices.BinarySearchFunc(s.trans, c, func(t transition, c byte) int {
		return int(t.label) - int(c)
	})
	if !ok {
		return 0, false
	}
	return s.trans[i].next, true
}

// Automaton is a trie with failure links. Next chases failure links on a
// mismatch, so a single step costs amortised O(1).
type Automaton struct {
	states []state
	// maxOffset is one past the largest end offset stored in any state.
	maxOffset int
}

// FromSegments builds the failure-linked automaton for segs.
func FromSegments(segs []segment.Segment) *Automaton {
	b := NewBuilder()
	for _, s := range segs {
		b.Insert(s.Bytes, s.End)
	}
	return b.Build()
}

// Start returns the root state.
func (a *Automaton) Start() StateID {
	return Root
}

// Next returns the state reached from s on byte c, following failure links
// until a state with a c-transition is found. The root absorbs every byte
// it has no edge for.
func (a *Automaton) Next(s StateID, c byte) StateID {
	for {
		if next, ok := a.states[s].lookup(c); ok {
			return next
		}
		if s == Root {
			return Root
		}
		s = a.states[s].fail
	}
}

// Goto returns the trie transition from s on c, without failure links.
func (a *Automaton) Goto(s StateID, c byte) (StateID, bool) {
	return a.states[s].lookup(c)
}

// Outputs returns the sorted end offsets of every segment that is a suffix
// of the path to s. The slice must not be modified.
func (a *Automaton) Outputs(s StateID) []int32 {
	return a.states[s].out
}

// IsTerminal reports whether at least one segment ends at s.
func (a *Automaton) IsTerminal(s StateID) bool {
	return len(a.states[s].out) > 0
}

// Fail returns the failure link of s. The root links to itself.
func (a *Automaton) Fail(s StateID) StateID {
	return a.states[s].fail
}

// Depth returns the length of the path from the root to s.
func (a *Automaton) Depth(s StateID) int {
	return int(a.states[s].depth)
}

// Len returns the number of states, root included.
func (a *Automaton) Len() int {
	return len(a.states)
}

// bfs calls visit for every non-root state in breadth-first order, with
// the parent and edge label it was reached by. Siblings are visited in
// ascending label order.
func (a *Automaton) bfs(visit func(parent StateID, c byte, s StateID)) {
	queue := make([]StateID, 0, len(a.states))
	queue = append(queue, Root)
	for head := 0; head < len(queue); head++ {
		parent := queue[head]
		for _, t := range a.states[parent].trans {
			visit(parent, t.label, t.next)
			queue = append(queue, t.next)
		}
	}
}

func newStateID(n int) StateID {
	return StateID(conv.IntToUint32(n))
}
