package flat

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/andribas404/aho-corasick/automaton"
	"github.com/andribas404/aho-corasick/segment"
)

func build(pattern string) (*automaton.DFA, *DFA) {
	d := automaton.FromSegments(segment.Split([]byte(pattern), '?')).Complete()
	return d, Build(d)
}

func TestLayout(t *testing.T) {
	d, f := build("ab??aba")
	if f.Len() != d.Len() {
		t.Fatalf("Len = %d, want %d", f.Len(), d.Len())
	}

	table, outStart, out := f.Table()
	if len(table) != d.Len()*Stride {
		t.Errorf("table len = %d, want %d", len(table), d.Len()*Stride)
	}
	for s := 0; s < d.Len(); s++ {
		for c := 0; c < Stride; c++ {
			want := uint32(d.Next(automaton.StateID(s), byte(c))) * Stride
			if got := table[s*Stride+c]; got != want {
				t.Fatalf("table[%d][%d] = %d, want %d", s, c, got, want)
			}
		}
		end := outStart[s+1] - 1
		if out[end] != EndOfList {
			t.Errorf("state %d list not terminated: %v", s, out[outStart[s]:outStart[s+1]])
		}
	}
	if f.HeapBytes() != 4*(len(table)+len(outStart)+len(out)) {
		t.Errorf("HeapBytes = %d", f.HeapBytes())
	}
}

func TestOutputsMatchCompleted(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 100; iter++ {
		pattern := make([]byte, 1+rng.Intn(10))
		for i := range pattern {
			pattern[i] = "ab?"[rng.Intn(3)]
		}
		d, f := build(string(pattern))

		sd, sf := d.Start(), f.Start()
		for i := 0; i < 64; i++ {
			c := "abx"[rng.Intn(3)]
			sd, sf = d.Next(sd, c), f.Next(sf, c)
			if uint32(sf) != uint32(sd)*Stride {
				t.Fatalf("pattern %q step %d: flat %d, completed %d", pattern, i, sf, sd)
			}
			got, want := f.Outputs(sf), d.Outputs(sd)
			if len(got) == 0 && len(want) == 0 {
				continue
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("pattern %q step %d: outputs %v, want %v", pattern, i, got, want)
			}
		}
	}
}

func TestSingleState(t *testing.T) {
	_, f := build("???")
	if f.Len() != 1 {
		t.Fatalf("Len = %d, want 1", f.Len())
	}
	for c := 0; c < Stride; c++ {
		if f.Next(f.Start(), byte(c)) != 0 {
			t.Fatalf("byte %d leaves the root", c)
		}
	}
	if len(f.Outputs(0)) != 0 {
		t.Error("root should have no outputs")
	}
}

func BenchmarkFlatNext(b *testing.B) {
	_, f := build("ab??aba?c?abc")
	text := []byte("ababacabaabcabcababacabaabcabc")
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		s := f.Start()
		for _, c := range text {
			s = f.Next(s, c)
		}
	}
}
