package automaton

import (
	"slices"

	"github.com/andribas404/aho-corasick/internal/conv"
	"github.com/andribas404/aho-corasick/internal/sparse"
)

// Builder accumulates segments into a trie.
//
// Example:
//
//	b := automaton.NewBuilder()
//	b.Insert([]byte("ab"), 1)
//	b.Insert([]byte("aba"), 6)
//	a := b.Build()
type Builder struct {
	states    []state
	maxOffset int
	built     bool
}

// NewBuilder returns a builder holding only the root state.
func NewBuilder() *Builder {
	return &Builder{states: []state{{}}}
}

// Insert adds seg to the trie and records end as one of the offsets
// reported when seg is recognised. Inserting the same content twice with
// different offsets keeps both offsets; the same offset twice collapses.
//
// Panics if seg is empty, end is negative or Build was already called.
func (b *Builder) Insert(seg []byte, end int) {
	if b.built {
		panic("automaton: Insert after Build")
	}
	if len(seg) == 0 {
		panic("automaton: empty segment")
	}
	if end < 0 {
		panic("automaton: negative segment offset")
	}

	cur := Root
	for _, c := range seg {
		cur = b.child(cur, c)
	}

	off := conv.IntToInt32(end)
	st := &b.states[cur]
	if i, found := slices.BinarySearch(st.out, off); !found {
		st.out = slices.Insert(st.out, i, off)
	}
	b.maxOffset = max(b.maxOffset, end+1)
}

// child follows the c-edge of s, creating the target state on demand.
func (b *Builder) child(s StateID, c byte) StateID {
	st := &b.states[s]
	i, ok := slices.BinarySearchFunc(st.trans, c, func(t transition, c byte) int {
		return int(t.label) - int(c)
	})
	if ok {
		return st.trans[i].next
	}

	next := newStateID(len(b.states))
	depth := st.depth + 1
	st.trans = slices.Insert(st.trans, i, transition{label: c, next: next})
	// st is invalid after this append.
	b.states = append(b.states, state{depth: depth})
	return next
}

// Build computes failure links and merged outputs and returns the
// automaton. The builder must not be used afterwards.
//
// States are processed breadth-first, so the failure target of a state,
// being strictly shallower, is complete before the state itself is
// visited. Its output set is then final and can be merged in one step.
func (b *Builder) Build() *Automaton {
	b.built = true
	a := &Automaton{states: b.states, maxOffset: b.maxOffset}
	b.states = nil

	merged := sparse.NewSet(a.maxOffset)
	a.bfs(func(parent StateID, c byte, s StateID) {
		st := &a.states[s]
		if parent != Root {
			st.fail = a.Next(a.states[parent].fail, c)
		}

		fo := a.states[st.fail].out
		if len(fo) == 0 {
			return
		}
		merged.Clear()
		for _, o := range st.out {
			merged.Insert(uint32(o))
		}
		for _, o := range fo {
			merged.Insert(uint32(o))
		}
		st.out = merged.AppendSorted(make([]int32, 0, merged.Len()))
	})
	return a
}
