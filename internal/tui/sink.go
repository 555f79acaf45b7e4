package tui

import (
	"sync"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
)

// Sink is the presenter handed to the executor. It buffers presentation
// events until the model drains them after a command completes, so the
// executor never blocks on the program's message loop.
type Sink struct {
	events []event
	mu     sync.Mutex
}

var _ service.Presenter = (*Sink)(nil)

// event is one of refreshEvent, navigateEvent, toastEvent or helpEvent.
type event any

type refreshEvent struct{ snapshot analysis.Snapshot }

type navigateEvent struct{ tab model.Tab }

type toastEvent struct {
	message string
	level   service.ToastLevel
}

type helpEvent struct{ examples []string }

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) push(e event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Refresh implements service.Presenter.
func (s *Sink) Refresh(snapshot analysis.Snapshot) { s.push(refreshEvent{snapshot: snapshot}) }

// Navigate implements service.Presenter.
func (s *Sink) Navigate(tab model.Tab) { s.push(navigateEvent{tab: tab}) }

// Toast implements service.Presenter.
func (s *Sink) Toast(message string, level service.ToastLevel) {
	s.push(toastEvent{message: message, level: level})
}

// ShowHelp implements service.Presenter.
func (s *Sink) ShowHelp(examples []string) { s.push(helpEvent{examples: examples}) }

// Drain returns and clears the buffered events in arrival order.
func (s *Sink) Drain() []event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	return events
}
