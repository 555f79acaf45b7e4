package tui

import (
	"github.com/Veraticus/ledgervox/internal/engine"
)

// commandDoneMsg carries the outcome of a command run off the event loop
// together with the presentation events it produced.
type commandDoneMsg struct {
	utterance string
	response  engine.Response
	events    []event
}

// toastExpiredMsg removes a toast once its display time has passed.
type toastExpiredMsg struct {
	id int
}
