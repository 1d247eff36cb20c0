package meta

import (
	"sync"

	"github.com/andribas404/aho-corasick/stream"
)

// matcherPool manages stream matchers for concurrent searches over one
// Engine. A matcher owns the sliding window, which is the only mutable
// search state.
type matcherPool struct {
	pool sync.Pool
}

func newMatcherPool(a stream.Automaton, patternLen, segments int) *matcherPool {
	return &matcherPool{
		pool: sync.Pool{
			New: func() any {
				return stream.New(a, patternLen, segments)
			},
		},
	}
}

// get returns a matcher in its initial state.
func (p *matcherPool) get() *stream.Matcher {
	return p.pool.Get().(*stream.Matcher)
}

// put resets m and returns it to the pool.
func (p *matcherPool) put(m *stream.Matcher) {
	m.Reset()
	p.pool.Put(m)
}
