// Package flat serializes a completed automaton into contiguous arrays.
//
// The transition table is a single []uint32, state-major and symbol-minor,
// with a fixed stride of 256 entries per state. Targets are stored
// premultiplied by the stride, so a step is one load:
//
//	state = table[state + c]
//
// Output offsets of all states live in one []int32. Each state's list is
// terminated by a sentinel, and the list of the state whose premultiplied
// id is s starts at outStart[s>>8].
//
// Go's bounds checks stay in place: a corrupted table index panics instead
// of producing wrong matches.
package flat

import (
	"github.com/andribas404/aho-corasick/automaton"
	"github.com/andribas404/aho-corasick/internal/conv"
)

const (
	// strideShift is log2 of the table stride.
	strideShift = 8

	// Stride is the number of table entries per state.
	Stride = 1 << strideShift

	// EndOfList terminates each state's output list.
	EndOfList int32 = -1
)

// DFA is a flattened, completed automaton. It is immutable and safe for
// concurrent use.
type DFA struct {
	table    []uint32
	outStart []int32
	out      []int32
}

// Build flattens d. State i of d becomes the premultiplied id i*Stride.
func Build(d *automaton.DFA) *DFA {
	n := d.Len()
	total := conv.MulUint32(conv.IntToUint32(n), Stride)

	f := &DFA{
		table:    make([]uint32, total),
		outStart: make([]int32, n+1),
	}
	for s := 0; s < n; s++ {
		id := automaton.StateID(s)
		row := d.Row(id)
		base := s << strideShift
		for c, next := range row {
			if int(next) >= n {
				panic("flat: transition target out of range")
			}
			f.table[base+c] = uint32(next) << strideShift
		}

		f.outStart[s] = conv.IntToInt32(len(f.out))
		f.out = append(f.out, d.Outputs(id)...)
		f.out = append(f.out, EndOfList)
	}
	f.outStart[n] = conv.IntToInt32(len(f.out))
	return f
}

// Start returns the root state.
func (f *DFA) Start() automaton.StateID {
	return automaton.Root
}

// Next returns the premultiplied state reached from s on byte c.
func (f *DFA) Next(s automaton.StateID, c byte) automaton.StateID {
	return automaton.StateID(f.table[uint32(s)+uint32(c)])
}

// Outputs returns the segment end offsets for s, without the sentinel.
func (f *DFA) Outputs(s automaton.StateID) []int32 {
	i := s >> strideShift
	return f.out[f.outStart[i] : f.outStart[i+1]-1]
}

// Table returns the transition table and the sentinel-terminated output
// arrays for callers that run their own hot loop. Must not be modified.
func (f *DFA) Table() (table []uint32, outStart []int32, out []int32) {
	return f.table, f.outStart, f.out
}

// Len returns the number of states.
func (f *DFA) Len() int {
	return len(f.outStart) - 1
}

// HeapBytes returns the memory held by the tables.
func (f *DFA) HeapBytes() int {
	return 4 * (len(f.table) + len(f.outStart) + len(f.out))
}
