// Package ledger owns the application state: transactions, budgets and
// settings, mirrored to a key/value store on every mutation.
//
// A Ledger is not safe for concurrent use. Commands run one at a time.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options control how a ledger is initialized from the store.
type Options struct {
	// Now supplies the evaluation instant for month-scoped totals.
	Now func() time.Time
	// OpeningBalance is used when no balance is stored.
	OpeningBalance decimal.Decimal
	// Categories is the category set; zero value means the defaults.
	Categories model.CategorySet
	// SeedSamples fills an empty store with the demo ledger.
	SeedSamples bool
	// VoiceDefault is used when no voice-response flag is stored.
	VoiceDefault bool
}

// DefaultOptions returns the options used by the CLI when no
// configuration overrides them.
func DefaultOptions() Options {
	return Options{
		Now:            time.Now,
		OpeningBalance: model.DefaultBalance,
		Categories:     model.DefaultCategories(),
		SeedSamples:    true,
		VoiceDefault:   true,
	}
}

// Ledger is the in-memory application state.
type Ledger struct {
	store        service.Store
	now          func() time.Time
	categories   model.CategorySet
	transactions []model.Transaction
	budgets      []model.Budget
	settings     model.Settings
}

// Load reads every key from the store, defaulting each independently.
// Read failures are logged and treated as absent keys.
func Load(ctx context.Context, store service.Store, opts Options) *Ledger {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Categories.Income) == 0 && len(opts.Categories.Expense) == 0 {
		opts.Categories = model.DefaultCategories()
	}

	l := &Ledger{
		store:      store,
		now:        opts.Now,
		categories: opts.Categories,
		settings: model.Settings{
			Balance:              opts.OpeningBalance,
			Theme:                model.ThemeLight,
			VoiceResponseEnabled: opts.VoiceDefault,
		},
	}

	if !l.load(ctx, service.KeyTransactions, &l.transactions) && opts.SeedSamples {
		l.transactions = model.SampleTransactions()
	}
	if !l.load(ctx, service.KeyBudgets, &l.budgets) && opts.SeedSamples {
		l.budgets = model.SampleBudgets()
	}

	var balance decimal.Decimal
	if l.load(ctx, service.KeyCurrentBalance, &balance) {
		l.settings.Balance = balance
	}
	var theme model.Theme
	if l.load(ctx, service.KeyTheme, &theme) {
		if parsed, err := model.ParseTheme(string(theme)); err == nil {
			l.settings.Theme = parsed
		}
	}
	var voice bool
	if l.load(ctx, service.KeyVoiceResponseEnabled, &voice) {
		l.settings.VoiceResponseEnabled = voice
	}

	return l
}

func (l *Ledger) load(ctx context.Context, key string, dst any) bool {
	found, err := l.store.Get(ctx, key, dst)
	if err != nil {
		common.LogError(err, "Failed to load ledger key", common.Fields{"key": key})
		return false
	}
	return found
}

// persist writes one key. Failures are logged and the in-memory state is
// kept as is.
func (l *Ledger) persist(ctx context.Context, key string, value any) {
	if err := l.store.Set(ctx, key, value); err != nil {
		common.LogError(err, "Failed to persist ledger key", common.Fields{"key": key})
	}
}

// Now returns the ledger's evaluation instant.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// Today returns the current calendar date.
func (l *Ledger) Today() model.Date {
	return model.DateOf(l.now())
}

// Categories returns the category set.
func (l *Ledger) Categories() model.CategorySet {
	return l.categories
}

// Settings returns the scalar preferences.
func (l *Ledger) Settings() model.Settings {
	return l.settings
}

// Transactions returns a copy of the transaction list in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Budgets returns a copy of the budget list.
func (l *Ledger) Budgets() []model.Budget {
	out := make([]model.Budget, len(l.budgets))
	copy(out, l.budgets)
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Aggregator returns an aggregator over the current transactions.
func (l *Ledger) Aggregator() analysis.Aggregator {
	return analysis.NewAggregator(l.transactions, l.now())
}

// Snapshot derives presentation data for the given table filter.
func (l *Ledger) Snapshot(filter analysis.Filter) analysis.Snapshot {
	return analysis.BuildSnapshot(analysis.SnapshotInput{
		Now:          l.now(),
		Settings:     l.settings,
		Filter:       filter,
		Categories:   l.categories,
		Transactions: l.transactions,
		Budgets:      l.budgets,
	})
}

// Find returns the transaction with id.
func (l *Ledger) Find(id string) (model.Transaction, error) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return l.transactions[i], nil
}

func (l *Ledger) indexOf(id string) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Append adds a transaction at the end of the list and persists. An empty
// or already used id is replaced by a fresh one.
func (l *Ledger) Append(ctx context.Context, t model.Transaction) model.Transaction {
	if t.ID == "" || l.indexOf(t.ID) >= 0 {
		t.ID = l.newID()
	}
	l.transactions = append(l.transactions, t)
	l.persist(ctx, service.KeyTransactions, l.transactions)
	return t
}

// AppendAll adds several transactions with a single write.
func (l *Ledger) AppendAll(ctx context.Context, txns []model.Transaction) []model.Transaction {
	added := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.ID == "" || l.indexOf(t.ID) >= 0 {
			t.ID = l.newID()
		}
		l.transactions = append(l.transactions, t)
		added = append(added, t)
	}
	if len(added) > 0 {
		l.persist(ctx, service.KeyTransactions, l.transactions)
	}
	return added
}

func (l *Ledger) newID() string {
	for {
		id := uuid.NewString()
		if l.indexOf(id) < 0 {
			return id
		}
	}
}

// Replace swaps the transaction with the same id for t.
func (l *Ledger) Replace(ctx context.Context, t model.Transaction) error {
	i := l.indexOf(t.ID)
	if i < 0 {
		return fmt.Errorf("transaction %s: %w", t.ID, common.ErrNotFound)
	}
	l.transactions[i] = t
	l.persist(ctx, service.KeyTransactions, l.transactions)
	return nil
}

// Remove deletes the transaction with id.
func (l *Ledger) Remove(ctx context.Context, id string) (model.Transaction, error) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	removed := l.transactions[i]
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	l.persist(ctx, service.KeyTransactions, l.transactions)
	return removed, nil
}

// RemoveLast deletes the most recently appended transaction. It reports
// false when the ledger is empty.
func (l *Ledger) RemoveLast(ctx context.Context) (model.Transaction, bool) {
	if len(l.transactions) == 0 {
		return model.Transaction{}, false
	}
	last := l.transactions[len(l.transactions)-1]
	l.transactions = l.transactions[:len(l.transactions)-1]
	l.persist(ctx, service.KeyTransactions, l.transactions)
	return last, true
}

// SetBudget overwrites the limit of the budget matching category
// case-insensitively, or creates one with spent taken from this month's
// expenses. It reports whether a budget was created.
func (l *Ledger) SetBudget(ctx context.Context, category string, limit decimal.Decimal) (model.Budget, bool) {
	for i := range l.budgets {
		if strings.EqualFold(l.budgets[i].Category, category) {
			l.budgets[i].Limit = limit
			l.persist(ctx, service.KeyBudgets, l.budgets)
			return l.budgets[i], false
		}
	}

	b := model.Budget{
		Category: category,
		Limit:    limit,
		Spent:    l.Aggregator().CategorySpend(category),
	}
	l.budgets = append(l.budgets, b)
	l.persist(ctx, service.KeyBudgets, l.budgets)
	return b, true
}

// RemoveBudget deletes the budget for category.
func (l *Ledger) RemoveBudget(ctx context.Context, category string) error {
	for i := range l.budgets {
		if strings.EqualFold(l.budgets[i].Category, category) {
			l.budgets = append(l.budgets[:i], l.budgets[i+1:]...)
			l.persist(ctx, service.KeyBudgets, l.budgets)
			return nil
		}
	}
	return fmt.Errorf("budget %s: %w", category, common.ErrNotFound)
}

// RefreshBudgets recomputes every budget's spend from this month's
// expenses and persists the refreshed list.
func (l *Ledger) RefreshBudgets(ctx context.Context) {
	if len(l.budgets) == 0 {
		return
	}
	agg := l.Aggregator()
	for i := range l.budgets {
		l.budgets[i].Spent = agg.CategorySpend(l.budgets[i].Category)
	}
	l.persist(ctx, service.KeyBudgets, l.budgets)
}

// SetBalance stores the current balance.
func (l *Ledger) SetBalance(ctx context.Context, balance decimal.Decimal) {
	l.settings.Balance = balance
	l.persist(ctx, service.KeyCurrentBalance, balance)
}

// SetTheme stores the theme.
func (l *Ledger) SetTheme(ctx context.Context, theme model.Theme) {
	l.settings.Theme = theme
	l.persist(ctx, service.KeyTheme, theme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (l *Ledger) ToggleTheme(ctx context.Context) model.Theme {
	l.SetTheme(ctx, l.settings.Theme.Toggle())
	return l.settings.Theme
}

// SetVoiceResponse stores the voice-response flag.
func (l *Ledger) SetVoiceResponse(ctx context.Context, enabled bool) {
	l.settings.VoiceResponseEnabled = enabled
	l.persist(ctx, service.KeyVoiceResponseEnabled, enabled)
}

// Reset drops every ledger key from the store and the in-memory state.
// With seed set the demo ledger is written back.
func (l *Ledger) Reset(ctx context.Context, seed bool, opts Options) {
	for _, key := range service.LedgerKeys {
		if err := l.store.Delete(ctx, key); err != nil {
			common.LogError(err, "Failed to delete ledger key", common.Fields{"key": key})
		}
	}

	l.transactions = nil
	l.budgets = nil
	l.settings = model.Settings{
		Balance:              opts.OpeningBalance,
		Theme:                model.ThemeLight,
		VoiceResponseEnabled: opts.VoiceDefault,
	}

	if seed {
		l.transactions = model.SampleTransactions()
		l.budgets = model.SampleBudgets()
	}
	l.persist(ctx, service.KeyTransactions, l.nonNilTransactions())
	l.persist(ctx, service.KeyBudgets, l.nonNilBudgets())
}

func (l *Ledger) nonNilTransactions() []model.Transaction {
	if l.transactions == nil {
		return []model.Transaction{}
	}
	return l.transactions
}

func (l *Ledger) nonNilBudgets() []model.Budget {
	if l.budgets == nil {
		return []model.Budget{}
	}
	return l.budgets
}
