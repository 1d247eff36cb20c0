package stream

import "math/bits"

// Window is a circular array of per-anchor counters.
//
// Slot a (masked by the window size) counts how many segment obligations of
// the pattern anchored at text position a have been confirmed. Anchors that
// can still receive counts always lie within the last patternLen positions,
// so a power-of-two size >= patternLen never aliases two live anchors.
type Window struct {
	counts []int32
	mask   int
}

// NewWindow returns a zeroed window able to track patternLen live anchors.
func NewWindow(patternLen int) *Window {
	size := 1
	if patternLen > 1 {
		size = 1 << bits.Len(uint(patternLen-1))
	}
	return &Window{
		counts: make([]int32, size),
		mask:   size - 1,
	}
}

// Add records one more confirmed segment for anchor.
func (w *Window) Add(anchor int) {
	w.counts[anchor&w.mask]++
}

// Count returns the current count of anchor without modifying it.
func (w *Window) Count(anchor int) int32 {
	return w.counts[anchor&w.mask]
}

// Slide returns the final count of anchor and clears its slot for the
// anchor one window length ahead.
func (w *Window) Slide(anchor int) int32 {
	i := anchor & w.mask
	n := w.counts[i]
	w.counts[i] = 0
	return n
}

// Len returns the number of slots.
func (w *Window) Len() int {
	return len(w.counts)
}

// Reset zeroes every slot.
func (w *Window) Reset() {
	clear(w.counts)
}
