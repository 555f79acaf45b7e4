// Package testutil provides test utilities for ledgervox: real SQLite
// stores, ledgers with a fixed clock, fluent transaction builders and
// recording fakes for the executor's collaborators.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/ledgervox/internal/ledger"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/storage"
)

// Now is the fixed evaluation instant used by test ledgers.
var Now = time.Date(2025, time.September, 15, 12, 0, 0, 0, time.UTC)

// Clock returns a clock frozen at t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SetupTestStore creates a new in-memory SQLite store with migrations
// applied. It is closed automatically when the test ends.
//
// Example:
//
//	store := testutil.SetupTestStore(t)
//	l := ledger.Load(ctx, store, testutil.LedgerOptions())
func SetupTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// LedgerOptions returns ledger options with the clock frozen at Now and
// no sample seeding.
func LedgerOptions() ledger.Options {
	opts := ledger.DefaultOptions()
	opts.Now = Clock(Now)
	opts.SeedSamples = false
	return opts
}

// LedgerOption adjusts test ledger setup.
type LedgerOption func(*ledgerSetup)

type ledgerSetup struct {
	store        service.Store
	opts         ledger.Options
	transactions []model.Transaction
	budgets      []model.Budget
}

// WithTransactions pre-populates the store with transactions.
func WithTransactions(txns ...model.Transaction) LedgerOption {
	return func(s *ledgerSetup) { s.transactions = txns }
}

// WithBudgets pre-populates the store with budgets.
func WithBudgets(budgets ...model.Budget) LedgerOption {
	return func(s *ledgerSetup) { s.budgets = budgets }
}

// WithSamples seeds the demo ledger.
func WithSamples() LedgerOption {
	return func(s *ledgerSetup) { s.opts.SeedSamples = true }
}

// WithStore uses store instead of a fresh SQLite database.
func WithStore(store service.Store) LedgerOption {
	return func(s *ledgerSetup) { s.store = store }
}

// WithClock freezes the ledger clock at now.
func WithClock(now time.Time) LedgerOption {
	return func(s *ledgerSetup) { s.opts.Now = Clock(now) }
}

// NewLedger creates a ledger over a fresh store.
//
// Example:
//
//	l := testutil.NewLedger(t,
//		testutil.WithTransactions(testutil.Txn().Expense(1500).Category("Food").Build()),
//	)
func NewLedger(t *testing.T, options ...LedgerOption) *ledger.Ledger {
	t.Helper()

	setup := &ledgerSetup{opts: LedgerOptions()}
	for _, opt := range options {
		opt(setup)
	}
	if setup.store == nil {
		setup.store = SetupTestStore(t)
	}

	ctx := context.Background()
	if setup.transactions != nil {
		if err := setup.store.Set(ctx, service.KeyTransactions, setup.transactions); err != nil {
			t.Fatalf("failed to seed transactions: %v", err)
		}
	}
	if setup.budgets != nil {
		if err := setup.store.Set(ctx, service.KeyBudgets, setup.budgets); err != nil {
			t.Fatalf("failed to seed budgets: %v", err)
		}
	}

	return ledger.Load(ctx, setup.store, setup.opts)
}
