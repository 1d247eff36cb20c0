package stream

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/andribas404/aho-corasick/automaton"
	"github.com/andribas404/aho-corasick/dfa/flat"
	"github.com/andribas404/aho-corasick/segment"
)

// bruteForce returns every anchor where pattern matches text, '?' matching
// any byte.
func bruteForce(pattern, text string) []int {
	out := []int{}
	for p := 0; p+len(pattern) <= len(text); p++ {
		ok := true
		for i := 0; i < len(pattern); i++ {
			if pattern[i] != '?' && pattern[i] != text[p+i] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	return out
}

type form struct {
	name  string
	build func(segs []segment.Segment) Automaton
}

var forms = []form{
	{"failure", func(segs []segment.Segment) Automaton {
		return automaton.FromSegments(segs)
	}},
	{"completed", func(segs []segment.Segment) Automaton {
		return automaton.FromSegments(segs).Complete()
	}},
	{"flat", func(segs []segment.Segment) Automaton {
		return flat.Build(automaton.FromSegments(segs).Complete())
	}},
}

func run(f form, pattern, text string) []int {
	segs := segment.Split([]byte(pattern), '?')
	var a Automaton
	if len(segs) > 0 {
		a = f.build(segs)
	}
	m := New(a, len(pattern), len(segs))
	out := []int{}
	m.Feed([]byte(text), func(anchor int) {
		out = append(out, anchor)
	})
	return out
}

func TestMatcherExamples(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    []int
	}{
		{"worked_example", "ab??aba", "ababacaba", []int{2}},
		{"exact_substring", "aba", "ababa", []int{0, 2}},
		{"all_wildcards", "???", "abcde", []int{0, 1, 2}},
		{"single_wildcard", "?", "xyz", []int{0, 1, 2}},
		{"pattern_longer_than_text", "ab?", "ab", []int{}},
		{"equal_length_match", "a?c", "abc", []int{0}},
		{"equal_length_miss", "a?d", "abc", []int{}},
		{"leading_wildcards", "??a", "aaaa", []int{0, 1}},
		{"trailing_wildcards", "a??", "aaaa", []int{0, 1}},
		{"repeated_segment", "ab?ab", "abxababyab", []int{0, 5}},
		{"suffix_segment", "ab?b", "abbbabab", []int{0, 4}},
		{"nested_segments", "a?aa?aaa", "aaaaaaaaaa", []int{0, 1, 2}},
		{"no_occurrence", "xy?z", "ababacaba", []int{}},
		{"empty_text", "a?b", "", []int{}},
	}

	for _, tt := range tests {
		for _, f := range forms {
			t.Run(tt.name+"/"+f.name, func(t *testing.T) {
				got := run(f, tt.pattern, tt.text)
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("pattern %q text %q: got %v, want %v", tt.pattern, tt.text, got, tt.want)
				}
			})
		}
	}
}

func TestEmptyPatternMatchesEverywhere(t *testing.T) {
	m := New(nil, 0, 0)
	var got []int
	m.Feed([]byte("abcd"), func(anchor int) { got = append(got, anchor) })
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("empty pattern: got %v, want %v", got, want)
	}
}

func TestAllWildcardsLongText(t *testing.T) {
	const n = 50
	text := make([]byte, n)
	for i := range text {
		text[i] = 'a' + byte(i%26)
	}
	got := run(forms[0], "???", string(text))
	if len(got) != n-2 || got[0] != 0 || got[len(got)-1] != n-3 {
		t.Errorf("??? over %d bytes: %d anchors, first %d, last %d", n, len(got), got[0], got[len(got)-1])
	}
}

// TestBruteForceEquivalence compares every automaton form with the naive
// scan on random patterns up to 20 bytes and texts up to 200 bytes.
func TestBruteForceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2019))
	for _, alphabet := range []string{"ab", "abc", "abcd"} {
		for iter := 0; iter < 300; iter++ {
			pattern := make([]byte, rng.Intn(21))
			for i := range pattern {
				if rng.Intn(3) == 0 {
					pattern[i] = '?'
				} else {
					pattern[i] = alphabet[rng.Intn(len(alphabet))]
				}
			}
			text := make([]byte, rng.Intn(201))
			for i := range text {
				text[i] = alphabet[rng.Intn(len(alphabet))]
			}

			want := bruteForce(string(pattern), string(text))
			if len(pattern) == 0 {
				// The empty pattern reports every consumed position.
				want = want[:len(text)]
			}
			for _, f := range forms {
				got := run(f, string(pattern), string(text))
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("%s: pattern %q text %q:\n got  %v\n want %v", f.name, pattern, text, got, want)
				}
			}
		}
	}
}

// TestSegmentCountIdentity checks that every reported anchor has all
// segments at their expected places.
func TestSegmentCountIdentity(t *testing.T) {
	pattern := "ab?a??ba?b"
	text := "abbaabbabbabxaxxbaxbababaabbaab"
	segs := segment.Split([]byte(pattern), '?')
	for _, f := range forms {
		for _, p := range run(f, pattern, text) {
			for _, s := range segs {
				start := p + s.Start()
				if text[start:start+s.Len()] != s.String() {
					t.Errorf("%s: anchor %d lacks segment %q at %d", f.name, p, s.String(), start)
				}
			}
		}
	}
}

func TestIndependentMatchersAgree(t *testing.T) {
	pattern := "ab??aba"
	text := "ababacabaabxxabaababacaba"
	for _, f := range forms {
		first := run(f, pattern, text)
		second := run(f, pattern, text)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: runs differ: %v vs %v", f.name, first, second)
		}
	}
}

func TestReset(t *testing.T) {
	segs := segment.Split([]byte("ab??aba"), '?')
	a := flat.Build(automaton.FromSegments(segs).Complete())
	m := New(a, 7, len(segs))

	var first, second []int
	m.Feed([]byte("ababacaba"), func(p int) { first = append(first, p) })
	if m.Pos() != 9 {
		t.Errorf("Pos = %d, want 9", m.Pos())
	}
	// Leave partial counts in the window, then reset.
	m.Feed([]byte("abab"), func(int) {})
	m.Reset()
	m.Feed([]byte("ababacaba"), func(p int) { second = append(second, p) })

	if !reflect.DeepEqual(first, []int{2}) || !reflect.DeepEqual(second, []int{2}) {
		t.Errorf("before reset %v, after reset %v; want [2] both", first, second)
	}
}

func TestFeedInChunks(t *testing.T) {
	pattern, text := "a?a?a", "aaabaaaaabaaba"
	want := bruteForce(pattern, text)
	segs := segment.Split([]byte(pattern), '?')
	a := automaton.FromSegments(segs).Complete()

	for chunk := 1; chunk <= len(text); chunk++ {
		m := New(a, len(pattern), len(segs))
		got := []int{}
		for i := 0; i < len(text); i += chunk {
			end := min(i+chunk, len(text))
			m.Feed([]byte(text[i:end]), func(p int) { got = append(got, p) })
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("chunk %d: got %v, want %v", chunk, got, want)
		}
	}
}

func BenchmarkMatcher(b *testing.B) {
	pattern := "ab??aba?c?abc"
	text := make([]byte, 1<<16)
	rng := rand.New(rand.NewSource(1))
	for i := range text {
		text[i] = "abc"[rng.Intn(3)]
	}
	segs := segment.Split([]byte(pattern), '?')

	for _, f := range forms {
		a := f.build(segs)
		b.Run(f.name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				m := New(a, len(pattern), len(segs))
				m.Feed(text, func(int) {})
			}
		})
	}
}

func FuzzMatcher(f *testing.F) {
	f.Add("ab??aba", "ababacaba")
	f.Add("???", "abcde")
	f.Add("a?a", "aaaa")
	f.Fuzz(func(t *testing.T, pattern, text string) {
		if len(pattern) == 0 || len(pattern) > 64 || len(text) > 1024 {
			return
		}
		want := bruteForce(pattern, text)
		got := run(forms[2], pattern, text)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("pattern %q text %q: got %v, want %v", pattern, text, got, want)
		}
	})
}
