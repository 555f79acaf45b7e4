// Package service defines the collaborator interfaces the command executor
// and ledger depend on.
package service

import (
	"context"
	"io"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/model"
)

// Ledger store keys.
const (
	KeyTransactions         = "transactions"
	KeyBudgets              = "budgets"
	KeyCurrentBalance       = "currentBalance"
	KeyTheme                = "theme"
	KeyVoiceResponseEnabled = "voiceResponseEnabled"
)

// LedgerKeys lists every key the ledger persists.
var LedgerKeys = []string{
	KeyTransactions,
	KeyBudgets,
	KeyCurrentBalance,
	KeyTheme,
	KeyVoiceResponseEnabled,
}

// Store defines the contract for the key/value persistence layer.
// Values are encoded as JSON.
type Store interface {
	// Get decodes the value stored under key into dst. It reports false
	// when the key is absent.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Speaker speaks a reply. Speaking again cancels any reply still in
// progress.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// ToastLevel classifies a transient notification.
type ToastLevel string

// Toast levels.
const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)

// Presenter is the write-only presentation sink.
type Presenter interface {
	Refresh(snapshot analysis.Snapshot)
	Navigate(tab model.Tab)
	Toast(message string, level ToastLevel)
	ShowHelp(examples []string)
}

// Exporter writes the transaction list somewhere the user can collect it.
// It returns the location written.
type Exporter interface {
	Export(ctx context.Context, transactions []model.Transaction) (string, error)
}

// Importer reads transactions from an external file format.
type Importer interface {
	Import(ctx context.Context, r io.Reader) ([]model.Transaction, error)
}
