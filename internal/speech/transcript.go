// Package speech adapts transcript streams and reply speakers to the
// command executor.
package speech

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/Veraticus/ledgervox/internal/cli"
)

// InterimPrefix marks a line as an interim transcript.
const InterimPrefix = "~"

// Transcript is one speech recognition event.
type Transcript struct {
	Text  string
	Final bool
}

// Source delivers transcripts. Next returns io.EOF when the stream ends.
type Source interface {
	Next(ctx context.Context) (Transcript, error)
}

// LineSource reads one transcript per line. Lines starting with
// InterimPrefix are interim results; every other non-blank line is final.
type LineSource struct {
	reader *cli.LineReader
	done   bool
}

// NewLineSource creates a source over r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{reader: cli.NewLineReader(r)}
}

// Next implements Source.
func (s *LineSource) Next(ctx context.Context) (Transcript, error) {
	for {
		if s.done {
			return Transcript{}, io.EOF
		}

		line, err := s.reader.ReadLine(ctx)
		if errors.Is(err, cli.ErrReadCanceled) {
			return Transcript{}, ctx.Err()
		}
		if errors.Is(err, io.EOF) {
			s.done = true
		} else if err != nil {
			return Transcript{}, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, InterimPrefix) {
			return Transcript{Text: strings.TrimSpace(strings.TrimPrefix(line, InterimPrefix))}, nil
		}
		return Transcript{Text: line, Final: true}, nil
	}
}

// SliceSource replays a fixed list of transcripts.
type SliceSource struct {
	items []Transcript
}

// NewSliceSource creates a source that yields items in order.
func NewSliceSource(items ...Transcript) *SliceSource {
	return &SliceSource{items: items}
}

// Next implements Source.
func (s *SliceSource) Next(ctx context.Context) (Transcript, error) {
	if err := ctx.Err(); err != nil {
		return Transcript{}, err
	}
	if len(s.items) == 0 {
		return Transcript{}, io.EOF
	}
	t := s.items[0]
	s.items = s.items[1:]
	return t, nil
}
