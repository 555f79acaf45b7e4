package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/service"
)

var (
	_ service.Speaker = (*WriterSpeaker)(nil)
	_ service.Speaker = (*CommandSpeaker)(nil)
	_ service.Speaker = MultiSpeaker(nil)
)

// WriterSpeaker prints replies to a writer.
type WriterSpeaker struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterSpeaker creates a speaker that prints to w.
func NewWriterSpeaker(w io.Writer) *WriterSpeaker {
	return &WriterSpeaker{w: w}
}

// Speak implements service.Speaker.
func (s *WriterSpeaker) Speak(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, cli.InfoStyle.Render(cli.SpeakerIcon+" "+text))
	return err
}

// CommandSpeaker hands each reply to an external text-to-speech program as
// its last argument. Starting a reply stops the one still playing.
type CommandSpeaker struct {
	cancel context.CancelFunc
	done   chan struct{}
	name   string
	args   []string
	mu     sync.Mutex
}

// NewCommandSpeaker creates a speaker running name with args plus the text.
func NewCommandSpeaker(name string, args []string) *CommandSpeaker {
	return &CommandSpeaker{name: name, args: args}
}

// Speak implements service.Speaker. It returns once the program has
// started.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	// The utterance outlives the command that triggered it.
	speakCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	args := append(append([]string{}, s.args...), text)
	cmd := exec.CommandContext(speakCtx, s.name, args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("failed to start %s: %w", s.name, err)
	}

	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil && speakCtx.Err() == nil {
			common.LogDebug("Speech command exited", common.Fields{"command": s.name, "error": err.Error()})
		}
	}()
	return nil
}

// Stop cancels the reply in progress, if any, and waits for it to exit.
func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *CommandSpeaker) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

// Wait blocks until the current reply finishes playing.
func (s *CommandSpeaker) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// MultiSpeaker speaks through every speaker in order and joins their
// errors.
type MultiSpeaker []service.Speaker

// Speak implements service.Speaker.
func (m MultiSpeaker) Speak(ctx context.Context, text string) error {
	var errs []error
	for _, s := range m {
		if err := s.Speak(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
