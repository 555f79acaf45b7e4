package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
)

// ErrInjected is returned by fakes configured to fail.
var ErrInjected = errors.New("injected failure")

// MemoryStore is a service.Store backed by a map, with failure injection.
type MemoryStore struct {
	data    map[string][]byte
	mu      sync.Mutex
	FailGet bool
	FailSet bool
	Writes  int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get implements service.Store.
func (m *MemoryStore) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return false, ErrInjected
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

// Set implements service.Store.
func (m *MemoryStore) Set(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return ErrInjected
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.Writes++
	return nil
}

// Delete implements service.Store.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return ErrInjected
	}
	delete(m.data, key)
	return nil
}

// Close implements service.Store.
func (m *MemoryStore) Close() error {
	return nil
}

// Keys returns the stored keys in lexical order.
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RecordingSpeaker records every spoken reply.
type RecordingSpeaker struct {
	Err    error
	Spoken []string
}

// Speak implements service.Speaker.
func (s *RecordingSpeaker) Speak(_ context.Context, text string) error {
	s.Spoken = append(s.Spoken, text)
	return s.Err
}

// Last returns the most recent reply, or "" when nothing was spoken.
func (s *RecordingSpeaker) Last() string {
	if len(s.Spoken) == 0 {
		return ""
	}
	return s.Spoken[len(s.Spoken)-1]
}

// Toast is a recorded notification.
type Toast struct {
	Message string
	Level   service.ToastLevel
}

// RecordingPresenter records every presentation call.
type RecordingPresenter struct {
	Snapshots  []analysis.Snapshot
	Navigation []model.Tab
	Toasts     []Toast
	Help       [][]string
}

// Refresh implements service.Presenter.
func (p *RecordingPresenter) Refresh(snapshot analysis.Snapshot) {
	p.Snapshots = append(p.Snapshots, snapshot)
}

// Navigate implements service.Presenter.
func (p *RecordingPresenter) Navigate(tab model.Tab) {
	p.Navigation = append(p.Navigation, tab)
}

// Toast implements service.Presenter.
func (p *RecordingPresenter) Toast(message string, level service.ToastLevel) {
	p.Toasts = append(p.Toasts, Toast{Message: message, Level: level})
}

// ShowHelp implements service.Presenter.
func (p *RecordingPresenter) ShowHelp(examples []string) {
	p.Help = append(p.Help, examples)
}

// RecordingExporter records exports and returns a fixed location.
type RecordingExporter struct {
	Err      error
	Location string
	Exported [][]model.Transaction
}

// Export implements service.Exporter.
func (e *RecordingExporter) Export(_ context.Context, txns []model.Transaction) (string, error) {
	e.Exported = append(e.Exported, txns)
	if e.Err != nil {
		return "", e.Err
	}
	return e.Location, nil
}
