package ledger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/ledger"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	l := testutil.NewLedger(t)

	assert.Zero(t, l.Len())
	assert.Empty(t, l.Budgets())
	settings := l.Settings()
	assert.True(t, model.DefaultBalance.Equal(settings.Balance))
	assert.Equal(t, model.ThemeLight, settings.Theme)
	assert.True(t, settings.VoiceResponseEnabled)
}

func TestLoad_SeedsSamplesWhenEmpty(t *testing.T) {
	l := testutil.NewLedger(t, testutil.WithSamples())

	assert.Equal(t, 5, l.Len())
	assert.Len(t, l.Budgets(), 3)
}

func TestLoad_StoredEmptyListIsNotReseeded(t *testing.T) {
	l := testutil.NewLedger(t,
		testutil.WithSamples(),
		testutil.WithTransactions([]model.Transaction{}...),
	)

	assert.Zero(t, l.Len())
	assert.Len(t, l.Budgets(), 3)
}

func TestLoad_ReadsEveryKeyIndependently(t *testing.T) {
	store := testutil.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, service.KeyTheme, model.ThemeDark))
	require.NoError(t, store.Set(ctx, service.KeyVoiceResponseEnabled, false))
	require.NoError(t, store.Set(ctx, service.KeyCurrentBalance, decimal.NewFromInt(1234)))

	l := ledger.Load(ctx, store, testutil.LedgerOptions())

	settings := l.Settings()
	assert.Equal(t, model.ThemeDark, settings.Theme)
	assert.False(t, settings.VoiceResponseEnabled)
	assert.True(t, decimal.NewFromInt(1234).Equal(settings.Balance))
}

func TestLoad_ReadFailureFallsBackToDefaults(t *testing.T) {
	var logs bytes.Buffer
	captureLogs(t, &logs)

	store := testutil.NewMemoryStore()
	store.FailGet = true

	opts := testutil.LedgerOptions()
	opts.SeedSamples = true
	l := ledger.Load(context.Background(), store, opts)

	assert.Equal(t, 5, l.Len())
	assert.Equal(t, model.ThemeLight, l.Settings().Theme)
	assert.Contains(t, logs.String(), "Failed to load ledger key")
}

func TestAppend_AssignsUniqueIDsAndPersists(t *testing.T) {
	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t, testutil.WithStore(store))
	ctx := context.Background()

	first := l.Append(ctx, testutil.Txn().ID("").Expense(10).Build())
	second := l.Append(ctx, testutil.Txn().ID(first.ID).Expense(20).Build())

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	reloaded := ledger.Load(ctx, store, testutil.LedgerOptions())
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, second.ID, reloaded.Transactions()[1].ID)
}

func TestAppendAll(t *testing.T) {
	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t, testutil.WithStore(store))

	added := l.AppendAll(context.Background(), []model.Transaction{
		testutil.Txn().ID("dup").Build(),
		testutil.Txn().ID("dup").Build(),
	})

	require.Len(t, added, 2)
	assert.Equal(t, "dup", added[0].ID)
	assert.NotEqual(t, "dup", added[1].ID)
	assert.Equal(t, 1, store.Writes)
}

func TestReplaceAndRemove(t *testing.T) {
	l := testutil.NewLedger(t, testutil.WithSamples())
	ctx := context.Background()

	edited, err := l.Find("2")
	require.NoError(t, err)
	edited.Amount = decimal.NewFromInt(999)
	require.NoError(t, l.Replace(ctx, edited))

	got, err := l.Find("2")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(999).Equal(got.Amount))

	removed, err := l.Remove(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "2", removed.ID)
	assert.Equal(t, 4, l.Len())

	_, err = l.Find("2")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, l.Replace(ctx, model.Transaction{ID: "nope"}), common.ErrNotFound)
	_, err = l.Remove(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRemoveLast_UsesInsertionOrder(t *testing.T) {
	older := testutil.Txn().On(model.NewDate(2025, time.January, 1)).Build()
	newer := testutil.Txn().On(model.NewDate(2025, time.September, 1)).Build()
	l := testutil.NewLedger(t, testutil.WithTransactions(newer, older))

	removed, ok := l.RemoveLast(context.Background())

	require.True(t, ok)
	assert.Equal(t, older.ID, removed.ID)
	assert.Equal(t, newer.ID, l.Transactions()[0].ID)
}

func TestRemoveLast_Empty(t *testing.T) {
	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t, testutil.WithStore(store))

	_, ok := l.RemoveLast(context.Background())

	assert.False(t, ok)
	assert.Zero(t, store.Writes)
}

func TestRemoveLastThenReAddRestoresTotals(t *testing.T) {
	l := testutil.NewLedger(t, testutil.WithSamples())
	ctx := context.Background()
	income := l.Aggregator().MonthlyIncome()
	expenses := l.Aggregator().MonthlyExpenses()

	removed, ok := l.RemoveLast(ctx)
	require.True(t, ok)
	l.Append(ctx, removed)

	assert.True(t, income.Equal(l.Aggregator().MonthlyIncome()))
	assert.True(t, expenses.Equal(l.Aggregator().MonthlyExpenses()))
}

func TestSetBudget(t *testing.T) {
	l := testutil.NewLedger(t, testutil.WithTransactions(
		testutil.Txn().Expense(700).Category("Food").Build(),
	))
	ctx := context.Background()

	b, created := l.SetBudget(ctx, "Food", decimal.NewFromInt(20000))
	assert.True(t, created)
	assert.True(t, decimal.NewFromInt(700).Equal(b.Spent))

	b, created = l.SetBudget(ctx, "food", decimal.NewFromInt(5000))
	assert.False(t, created)
	assert.Equal(t, "Food", b.Category)
	assert.True(t, decimal.NewFromInt(5000).Equal(b.Limit))
	assert.Len(t, l.Budgets(), 1)

	require.NoError(t, l.RemoveBudget(ctx, "FOOD"))
	assert.Empty(t, l.Budgets())
	assert.ErrorIs(t, l.RemoveBudget(ctx, "Food"), common.ErrNotFound)
}

func TestRefreshBudgets_RecomputesStaleSpend(t *testing.T) {
	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t,
		testutil.WithStore(store),
		testutil.WithTransactions(testutil.Txn().Expense(300).Category("Transport").Build()),
		testutil.WithBudgets(model.Budget{Category: "Transport", Limit: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(999)}),
	)
	ctx := context.Background()

	l.RefreshBudgets(ctx)

	assert.True(t, decimal.NewFromInt(300).Equal(l.Budgets()[0].Spent))
	reloaded := ledger.Load(ctx, store, testutil.LedgerOptions())
	assert.True(t, decimal.NewFromInt(300).Equal(reloaded.Budgets()[0].Spent))
}

func TestSettingsSetters(t *testing.T) {
	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t, testutil.WithStore(store))
	ctx := context.Background()

	l.SetBalance(ctx, decimal.NewFromInt(500))
	assert.Equal(t, model.ThemeDark, l.ToggleTheme(ctx))
	l.SetVoiceResponse(ctx, false)

	reloaded := ledger.Load(ctx, store, testutil.LedgerOptions())
	settings := reloaded.Settings()
	assert.True(t, decimal.NewFromInt(500).Equal(settings.Balance))
	assert.Equal(t, model.ThemeDark, settings.Theme)
	assert.False(t, settings.VoiceResponseEnabled)
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	var logs bytes.Buffer
	captureLogs(t, &logs)

	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t, testutil.WithStore(store))
	store.FailSet = true

	added := l.Append(context.Background(), testutil.Txn().Expense(50).Build())

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, added.ID, l.Transactions()[0].ID)
	assert.Contains(t, logs.String(), "Failed to persist ledger key")
	assert.Contains(t, logs.String(), "key=transactions")
}

func TestReset(t *testing.T) {
	store := testutil.NewMemoryStore()
	l := testutil.NewLedger(t, testutil.WithStore(store), testutil.WithSamples())
	ctx := context.Background()
	l.SetTheme(ctx, model.ThemeDark)

	l.Reset(ctx, false, testutil.LedgerOptions())

	assert.Zero(t, l.Len())
	assert.Empty(t, l.Budgets())
	assert.Equal(t, model.ThemeLight, l.Settings().Theme)
	assert.Equal(t, []string{service.KeyBudgets, service.KeyTransactions}, store.Keys())

	l.Reset(ctx, true, testutil.LedgerOptions())
	assert.Equal(t, 5, l.Len())
}

func TestSnapshot(t *testing.T) {
	l := testutil.NewLedger(t, testutil.WithSamples())

	snap := l.Snapshot(analysis.Filter{Type: model.TypeIncome})

	assert.Len(t, snap.Rows, 2)
	assert.Equal(t, testutil.Now, snap.GeneratedAt)
	assert.True(t, decimal.NewFromInt(55000).Equal(snap.MonthlyIncome))
}

func captureLogs(t *testing.T, w *bytes.Buffer) {
	t.Helper()
	previous := slog.Default()
	require.NoError(t, common.SetupLoggerTo(w, slog.LevelDebug, "console"))
	t.Cleanup(func() { slog.SetDefault(previous) })
}
