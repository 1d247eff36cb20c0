// Package textio reads the pattern and text of a search from a byte stream
// and writes the resulting anchors.
//
// Input is a sequence of tokens separated by runs of separator bytes (any
// byte <= ' '). The first token is the pattern; every later token is text,
// and the text is the concatenation of those tokens with separators
// dropped.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/andribas404/aho-corasick/simd"
)

// DefaultBufferSize is the read and write buffer size used when none is
// given.
const DefaultBufferSize = 64 << 10

// Reader splits an input stream into a pattern and text chunks.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader over r with a buffer of size bytes, or
// DefaultBufferSize if size <= 0.
func NewReader(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Reader{r: bufio.NewReaderSize(r, size)}
}

// fill returns the buffered bytes, reading more only when the buffer is
// empty. The slice is valid until the next read or discard.
func (r *Reader) fill() ([]byte, error) {
	if _, err := r.r.Peek(1); err != nil {
		return nil, err
	}
	return r.r.Peek(r.r.Buffered())
}

// ReadPattern skips leading separators and returns the first token. An
// input without tokens yields an empty pattern.
func (r *Reader) ReadPattern() ([]byte, error) {
	for {
		buf, err := r.fill()
		if err != nil {
			return nil, readErr("pattern", err)
		}
		if i := simd.IndexNonSeparator(buf); i >= 0 {
			_, _ = r.r.Discard(i)
			break
		}
		_, _ = r.r.Discard(len(buf))
	}

	var pattern []byte
	for {
		buf, err := r.fill()
		if err != nil {
			return pattern, readErr("pattern", err)
		}
		if i := simd.IndexSeparator(buf); i >= 0 {
			pattern = append(pattern, buf[:i]...)
			_, _ = r.r.Discard(i)
			return pattern, nil
		}
		pattern = append(pattern, buf...)
		_, _ = r.r.Discard(len(buf))
	}
}

// Stream calls emit with every run of non-separator bytes in the rest of
// the input, in order, until end of input. The slice passed to emit is
// only valid during the call.
func (r *Reader) Stream(emit func(chunk []byte)) error {
	for {
		buf, err := r.fill()
		if err != nil {
			return readErr("text", err)
		}
		n := len(buf)
		for len(buf) > 0 {
			i := simd.IndexNonSeparator(buf)
			if i < 0 {
				break
			}
			buf = buf[i:]
			j := simd.IndexSeparator(buf)
			if j < 0 {
				j = len(buf)
			}
			emit(buf[:j])
			buf = buf[j:]
		}
		_, _ = r.r.Discard(n)
	}
}

// readErr maps end of input to nil and wraps anything else.
func readErr(what string, err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read %s: %w", what, err)
}
