package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrReadCanceled is returned when a read is abandoned because its context
// ended. The line being read is not lost: the next ReadLine returns it.
var ErrReadCanceled = errors.New("read canceled")

type lineResult struct {
	err  error
	line string
}

// LineReader reads newline-terminated lines such as typed confirmations or
// transcripts piped from a speech recognizer, and lets the caller give up
// waiting without losing input. It supports one reader goroutine at a time.
type LineReader struct {
	reader  *bufio.Reader
	pending chan lineResult
	mu      sync.Mutex
}

// NewLineReader creates a line reader over r.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. At end of input
// it returns whatever unterminated text remains together with io.EOF. If
// ctx ends first it returns ErrReadCanceled and the underlying read keeps
// running; its line is handed to the next call.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	ch := r.inflight()

	select {
	case <-ctx.Done():
		return "", ErrReadCanceled
	case res := <-ch:
		r.mu.Lock()
		r.pending = nil
		r.mu.Unlock()
		return strings.TrimRight(res.line, "\r\n"), res.err
	}
}

// inflight returns the channel of the read in progress, starting one if a
// previous call has not left one behind.
func (r *LineReader) inflight() chan lineResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		ch := make(chan lineResult, 1)
		r.pending = ch
		go func() {
			line, err := r.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}
	return r.pending
}
