package engine

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	txn, err := f.exec.Record(ctx, Entry{
		Type:     model.TypeIncome,
		Amount:   decimal.NewFromInt(800),
		Category: "freelancer",
		Date:     model.NewDate(2025, time.September, 3),
	})

	require.NoError(t, err)
	assert.Equal(t, "Freelance", txn.Category)
	assert.Equal(t, "Income from Freelance", txn.Description)
	assert.Equal(t, model.NewDate(2025, time.September, 3), txn.Date)
	assert.Equal(t, ToastTxnAdded, f.presenter.Toasts[0].Message)
	assert.Empty(t, f.speaker.Spoken)
}

func TestRecord_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.exec.Record(ctx, Entry{Type: "transfer", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, common.ErrInvalidType)

	_, err = f.exec.Record(ctx, Entry{Type: model.TypeExpense, Amount: decimal.Zero})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
	assert.Equal(t, ToastFillAllFields, common.UserMessage(err, ""))

	assert.Zero(t, f.ledger.Len())
	require.Len(t, f.presenter.Toasts, 2)
	assert.Equal(t, service.ToastError, f.presenter.Toasts[1].Level)
}

func TestEditAndDelete(t *testing.T) {
	f := newFixture(t, testutil.WithSamples())
	ctx := context.Background()

	edited, err := f.exec.Edit(ctx, "3", Entry{
		Type:        model.TypeExpense,
		Amount:      decimal.NewFromInt(9000),
		Category:    "transport",
		Description: "Service",
		Date:        model.NewDate(2025, time.September, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, "3", edited.ID)
	assert.Equal(t, "Transport", edited.Category)

	got, err := f.ledger.Find("3")
	require.NoError(t, err)
	assert.Equal(t, "Service", got.Description)

	_, err = f.exec.Edit(ctx, "missing", Entry{Type: model.TypeExpense, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, common.ErrNotFound)

	removed, err := f.exec.Delete(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "3", removed.ID)
	assert.Equal(t, 4, f.ledger.Len())

	_, err = f.exec.Delete(ctx, "3")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetBudgetLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.exec.SetBudgetLimit(ctx, "bills", decimal.NewFromInt(4000))
	require.NoError(t, err)
	assert.Equal(t, "Bills", b.Category)

	_, err = f.exec.SetBudgetLimit(ctx, "salary", decimal.NewFromInt(4000))
	assert.ErrorIs(t, err, common.ErrMissingCategory)

	_, err = f.exec.SetBudgetLimit(ctx, "Food", decimal.Zero)
	assert.ErrorIs(t, err, common.ErrMissingCategory)

	assert.Len(t, f.ledger.Budgets(), 1)

	require.NoError(t, f.exec.RemoveBudget(ctx, "bills"))
	assert.Empty(t, f.ledger.Budgets())
}

func TestImport(t *testing.T) {
	f := newFixture(t)

	added := f.exec.Import(context.Background(), []model.Transaction{
		{ID: "a", Type: model.TypeExpense, Amount: decimal.NewFromInt(10), Category: "Food", Date: model.NewDate(2025, time.September, 1)},
		{ID: "b", Type: model.TypeExpense, Amount: decimal.NewFromInt(20), Category: "movie night"},
		{ID: "c", Type: "bogus", Amount: decimal.NewFromInt(30)},
	})

	require.Len(t, added, 2)
	assert.Equal(t, "Food", added[0].Category)
	assert.Equal(t, model.OtherCategory, added[1].Category)
	assert.Equal(t, model.DateOf(testutil.Now), added[1].Date)
	assert.Equal(t, ToastImportComplete, f.presenter.Toasts[0].Message)
}

func TestSettingsActions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, model.ThemeDark, f.exec.ToggleTheme(ctx))
	assert.Equal(t, "Switched to dark theme", f.presenter.Toasts[0].Message)

	f.exec.SetTheme(ctx, model.ThemeLight)
	f.exec.SetBalance(ctx, decimal.NewFromInt(7))

	snap := f.presenter.Snapshots[len(f.presenter.Snapshots)-1]
	assert.Equal(t, model.ThemeLight, snap.Settings.Theme)
	assert.True(t, decimal.NewFromInt(7).Equal(snap.Balance))
}

func TestSetFilter(t *testing.T) {
	f := newFixture(t, testutil.WithSamples())

	f.exec.SetFilter(analysis.Filter{Type: model.TypeIncome})

	assert.Equal(t, model.TypeIncome, f.exec.Filter().Type)
	require.Len(t, f.presenter.Snapshots, 1)
	assert.Len(t, f.presenter.Snapshots[0].Rows, 2)
	assert.Len(t, f.exec.Snapshot().Rows, 2)
}
