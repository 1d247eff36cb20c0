package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Writer writes anchors in decimal, each followed by a single space.
type Writer struct {
	w       *bufio.Writer
	scratch []byte
	count   int
}

// NewWriter returns a Writer over w with a buffer of size bytes, or
// DefaultBufferSize if size <= 0.
func NewWriter(w io.Writer, size int) *Writer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Writer{
		w:       bufio.NewWriterSize(w, size),
		scratch: make([]byte, 0, 24),
	}
}

// WriteAnchor writes one anchor.
func (w *Writer) WriteAnchor(anchor int) error {
	w.scratch = strconv.AppendInt(w.scratch[:0], int64(anchor), 10)
	w.scratch = append(w.scratch, ' ')
	if _, err := w.w.Write(w.scratch); err != nil {
		return fmt.Errorf("write anchor: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of anchors written.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
