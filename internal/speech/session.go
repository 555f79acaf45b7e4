package speech

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Veraticus/ledgervox/internal/intent"
)

// ErrCaptureActive is returned when a capture is started while another
// one is still running.
var ErrCaptureActive = errors.New("capture session already active")

// Handlers receive transcript events. Either may be nil.
type Handlers struct {
	// Interim is called with partial text while the user is speaking.
	Interim func(text string)
	// Final is called once per final transcript with the normalized
	// utterance. The next transcript is not read until it returns.
	Final func(ctx context.Context, utterance string)
}

// Recognizer runs capture sessions, at most one at a time.
type Recognizer struct {
	mu     sync.Mutex
	active bool
}

func (r *Recognizer) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		return false
	}
	r.active = true
	return true
}

func (r *Recognizer) end() {
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()
}

// Listen consumes src until it ends or ctx is canceled. Final transcripts
// are lower-cased and trimmed before reaching h.Final; blank ones are
// dropped.
func (r *Recognizer) Listen(ctx context.Context, src Source, h Handlers) error {
	if !r.begin() {
		return ErrCaptureActive
	}
	defer r.end()

	for {
		t, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !t.Final {
			if h.Interim != nil {
				h.Interim(t.Text)
			}
			continue
		}

		utterance := intent.Normalize(t.Text)
		if utterance == "" || h.Final == nil {
			continue
		}
		h.Final(ctx, utterance)
	}
}
