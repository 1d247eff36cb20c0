package meta

import (
	"sync/atomic"

	"github.com/andribas404/aho-corasick/prefilter"
	"github.com/andribas404/aho-corasick/segment"
	"github.com/andribas404/aho-corasick/stream"
)

// Engine is a compiled wildcard pattern.
//
// Thread safety: an Engine may be used from multiple goroutines. Streams
// returned by NewStream are owned by the caller and are not shared.
type Engine struct {
	pattern   []byte
	config    Config
	strategy  Strategy
	segs      []segment.Segment
	automaton stream.Automaton // nil when the pattern has no segments
	numStates int
	heapBytes int
	prefilter prefilter.Prefilter
	pool      *matcherPool

	stats Stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts FindAll, Count and IsMatch calls
	Searches uint64

	// PrefilterRejections counts texts rejected without running the matcher
	PrefilterRejections uint64

	// PrefilterSkipped counts text bytes the matcher never consumed
	PrefilterSkipped uint64

	// Matches counts reported occurrences
	Matches uint64
}

// NewStream returns a new matcher for feeding text incrementally.
// Anchors it reports are relative to the first byte it is fed.
func (e *Engine) NewStream() *stream.Matcher {
	return stream.New(e.automaton, len(e.pattern), len(e.segs))
}

// Strategy returns the automaton form in use.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// Pattern returns a copy of the compiled pattern.
func (e *Engine) Pattern() []byte {
	return append([]byte(nil), e.pattern...)
}

// PatternLen returns the pattern length in bytes.
func (e *Engine) PatternLen() int {
	return len(e.pattern)
}

// Segments returns the non-wildcard segments of the pattern. The result
// must not be modified.
func (e *Engine) Segments() []segment.Segment {
	return e.segs
}

// NumStates returns the number of automaton states, 0 when the pattern
// has no segments.
func (e *Engine) NumStates() int {
	return e.numStates
}

// HeapBytes returns the approximate size of the transition tables.
func (e *Engine) HeapBytes() int {
	n := e.heapBytes
	if e.prefilter != nil {
		n += e.prefilter.HeapBytes()
	}
	return n
}

// PrefilterKind reports which prefilter searches use.
func (e *Engine) PrefilterKind() prefilter.Kind {
	return prefilter.KindOf(e.prefilter)
}

// Stats returns execution statistics.
//
// Example:
//
//	stats := engine.Stats()
//	println("searches:", stats.Searches)
//	println("rejected:", stats.PrefilterRejections)
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:            atomic.LoadUint64(&e.stats.Searches),
		PrefilterRejections: atomic.LoadUint64(&e.stats.PrefilterRejections),
		PrefilterSkipped:    atomic.LoadUint64(&e.stats.PrefilterSkipped),
		Matches:             atomic.LoadUint64(&e.stats.Matches),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejections, 0)
	atomic.StoreUint64(&e.stats.PrefilterSkipped, 0)
	atomic.StoreUint64(&e.stats.Matches, 0)
}
