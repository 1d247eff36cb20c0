package automaton

// DFA is the completed form of an Automaton: every state has a transition
// for every byte, so a step is a single table lookup.
type DFA struct {
	rows [][AlphabetSize]StateID
	out  [][]int32
}

// Complete resolves every missing transition through the failure links.
//
// The pass runs breadth-first from the root's children. A missing edge of s
// on c becomes the edge of fail(s) on c; fail(s) is shallower than s, so
// its row is already complete. Missing root edges loop back to the root.
func (a *Automaton) Complete() *DFA {
	d := &DFA{
		rows: make([][AlphabetSize]StateID, len(a.states)),
		out:  make([][]int32, len(a.states)),
	}
	for i := range a.states {
		d.out[i] = a.states[i].out
	}

	// Root edges are already total: either a trie edge or the root itself.
	for _, t := range a.states[Root].trans {
		d.rows[Root][t.label] = t.next
	}

	a.bfs(func(_ StateID, _ byte, s StateID) {
		row := &d.rows[s]
		*row = d.rows[a.states[s].fail]
		for _, t := range a.states[s].trans {
			row[t.label] = t.next
		}
	})
	return d
}

// Start returns the root state.
func (d *DFA) Start() StateID {
	return Root
}

// Next returns the state reached from s on byte c.
func (d *DFA) Next(s StateID, c byte) StateID {
	return d.rows[s][c]
}

// Outputs returns the sorted end offsets of every segment ending at s.
// The slice must not be modified.
func (d *DFA) Outputs(s StateID) []int32 {
	return d.out[s]
}

// Row returns the full transition row of s. The array must not be
// modified.
func (d *DFA) Row(s StateID) *[AlphabetSize]StateID {
	return &d.rows[s]
}

// Len returns the number of states, root included.
func (d *DFA) Len() int {
	return len(d.rows)
}
