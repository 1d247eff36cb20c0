package meta

import (
	"github.com/andribas404/aho-corasick/automaton"
	"github.com/andribas404/aho-corasick/dfa/flat"
	"github.com/andribas404/aho-corasick/prefilter"
	"github.com/andribas404/aho-corasick/segment"
	"github.com/andribas404/aho-corasick/stream"
)

// Compile compiles pattern with the default configuration.
func Compile(pattern []byte) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with config.
//
// The returned error is a *CompileError matching ErrInvalidConfig or
// ErrPatternTooLong under errors.Is. Patterns made only of wildcards, and
// the empty pattern, are valid.
func CompileWithConfig(pattern []byte, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, &CompileError{
			Kind:    InvalidConfig,
			Message: "invalid configuration",
			Cause:   err,
		}
	}
	if len(pattern) > config.MaxPatternLen {
		return nil, &CompileError{
			Kind:    PatternTooLong,
			Message: "pattern too long",
			Cause: &ConfigError{
				Field:   "MaxPatternLen",
				Message: "pattern exceeds limit",
			},
		}
	}

	pattern = append([]byte(nil), pattern...)
	segs := segment.Split(pattern, config.Wildcard)

	e := &Engine{
		pattern:  pattern,
		config:   config,
		strategy: config.Strategy,
		segs:     segs,
	}
	if len(segs) > 0 {
		e.automaton, e.numStates, e.heapBytes = buildAutomaton(segs, config.Strategy)
		if config.EnablePrefilter {
			e.prefilter = prefilter.New(segs)
		}
	}
	e.pool = newMatcherPool(e.automaton, len(pattern), len(segs))
	return e, nil
}

// buildAutomaton builds the segment automaton in the form selected by
// strategy and reports its state count and approximate table size.
func buildAutomaton(segs []segment.Segment, strategy Strategy) (stream.Automaton, int, int) {
	trie := automaton.FromSegments(segs)
	switch strategy {
	case UseFailureLinks:
		return trie, trie.Len(), 0
	case UseCompleted:
		d := trie.Complete()
		return d, d.Len(), d.Len() * automaton.AlphabetSize * 4
	default:
		f := flat.Build(trie.Complete())
		return f, f.Len(), f.HeapBytes()
	}
}
