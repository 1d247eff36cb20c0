// Package ahocorasick finds every occurrence of a pattern with single-byte
// wildcards in a text, in time linear in the pattern and text lengths plus
// the number of segment occurrences.
//
// A pattern such as "ab??aba" is split at its wildcards into segments ("ab"
// and "aba"). One Aho-Corasick automaton recognises all segments in a single
// pass over the text, and every recognised segment votes for the anchor at
// which the whole pattern would have to start. An anchor that collects one
// vote per segment is an occurrence.
//
// Basic usage:
//
//	m, err := ahocorasick.Compile("ab??aba")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.FindAllString("ababacaba")) // [2]
//
// Streaming usage:
//
//	s := m.NewStream()
//	for chunk := range chunks {
//	    s.Feed(chunk, func(anchor int) { fmt.Println(anchor) })
//	}
//
// Advanced usage:
//
//	config := ahocorasick.DefaultConfig().WithStrategy(meta.UseFailureLinks)
//	m, err := ahocorasick.CompileWithConfig("a?c", config)
package ahocorasick

import (
	"github.com/andribas404/aho-corasick/meta"
	"github.com/andribas404/aho-corasick/stream"
)

// Matcher is a compiled wildcard pattern.
//
// A Matcher is safe to use concurrently from multiple goroutines.
type Matcher struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles pattern with '?' as the wildcard.
//
// Every pattern is well formed; the only error is a pattern longer than
// the configured limit.
func Compile(pattern string) (*Matcher, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var header = ahocorasick.MustCompile("HTTP/1.? 200")
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("ahocorasick: Compile(`" + pattern + "`): " + err.Error())
	}
	return m
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config meta.Config) (*Matcher, error) {
	engine, err := meta.CompileWithConfig([]byte(pattern), config)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// FindAll returns the anchors of every occurrence in text, overlapping
// occurrences included, in increasing order. It returns nil if there is
// none.
func (m *Matcher) FindAll(text []byte) []int {
	return m.engine.FindAll(text)
}

// FindAllString is like FindAll but takes a string.
func (m *Matcher) FindAllString(text string) []int {
	return m.engine.FindAll([]byte(text))
}

// Count returns the number of occurrences in text.
func (m *Matcher) Count(text []byte) int {
	return m.engine.Count(text)
}

// Match reports whether the pattern occurs in text.
func (m *Matcher) Match(text []byte) bool {
	return m.engine.IsMatch(text)
}

// MatchString reports whether the pattern occurs in text.
func (m *Matcher) MatchString(text string) bool {
	return m.engine.IsMatch([]byte(text))
}

// NewStream returns a matcher for text delivered in pieces. Anchors it
// reports count from the first byte it is fed.
func (m *Matcher) NewStream() *stream.Matcher {
	return m.engine.NewStream()
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.pattern
}

// Len returns the pattern length in bytes.
func (m *Matcher) Len() int {
	return m.engine.PatternLen()
}

// NumSegments returns the number of non-wildcard segments in the pattern.
func (m *Matcher) NumSegments() int {
	return len(m.engine.Segments())
}

// Stats returns execution statistics.
func (m *Matcher) Stats() meta.Stats {
	return m.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (m *Matcher) ResetStats() {
	m.engine.ResetStats()
}
