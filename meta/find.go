package meta

import "sync/atomic"

// FindAll returns the anchors of every occurrence of the pattern in text,
// in increasing order. Overlapping occurrences are all reported.
//
// The empty pattern reports every position of text.
func (e *Engine) FindAll(text []byte) []int {
	var anchors []int
	e.search(text, func(anchor int) bool {
		anchors = append(anchors, anchor)
		return true
	})
	return anchors
}

// Count returns the number of occurrences of the pattern in text.
func (e *Engine) Count(text []byte) int {
	n := 0
	e.search(text, func(int) bool {
		n++
		return true
	})
	return n
}

// IsMatch reports whether the pattern occurs in text. It stops at the
// first occurrence.
func (e *Engine) IsMatch(text []byte) bool {
	found := false
	e.search(text, func(int) bool {
		found = true
		return false
	})
	return found
}

// search calls emit for every anchor in increasing order until emit
// returns false.
func (e *Engine) search(text []byte, emit func(anchor int) bool) {
	atomic.AddUint64(&e.stats.Searches, 1)

	start := 0
	if e.prefilter != nil && len(text) >= e.config.MinPrefilterText {
		lower, ok := e.prefilter.Lower(text)
		if !ok {
			atomic.AddUint64(&e.stats.PrefilterRejections, 1)
			atomic.AddUint64(&e.stats.PrefilterSkipped, uint64(len(text)))
			return
		}
		start = lower
		atomic.AddUint64(&e.stats.PrefilterSkipped, uint64(lower))
	}

	m := e.pool.get()
	defer e.pool.put(m)

	var found uint64
	for _, c := range text[start:] {
		anchor, ok := m.Step(c)
		if !ok {
			continue
		}
		found++
		if !emit(start + anchor) {
			break
		}
	}
	atomic.AddUint64(&e.stats.Matches, found)
}
