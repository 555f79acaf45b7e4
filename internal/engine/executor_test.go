package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/ledgervox/internal/intent"
	"github.com/Veraticus/ledgervox/internal/ledger"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ledger    *ledger.Ledger
	speaker   *testutil.RecordingSpeaker
	presenter *testutil.RecordingPresenter
	exporter  *testutil.RecordingExporter
	exec      *Executor
}

func newFixture(t *testing.T, options ...testutil.LedgerOption) *fixture {
	t.Helper()
	f := &fixture{
		ledger:    testutil.NewLedger(t, options...),
		speaker:   &testutil.RecordingSpeaker{},
		presenter: &testutil.RecordingPresenter{},
		exporter:  &testutil.RecordingExporter{Location: "financial_data.csv"},
	}
	f.exec = NewWithConfig(f.ledger, f.speaker, f.presenter, Config{Exporter: f.exporter})
	return f
}

func TestHandle_AddExpenseScenario(t *testing.T) {
	f := newFixture(t)

	resp := f.exec.Handle(context.Background(), "Add expense 1,500 for food groceries")

	assert.True(t, resp.Mutated)
	require.Equal(t, 1, f.ledger.Len())
	txn := f.ledger.Transactions()[0]
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.True(t, decimal.NewFromInt(1500).Equal(txn.Amount))
	assert.Equal(t, "Food", txn.Category)
	assert.Equal(t, "groceries", txn.Description)
	assert.Equal(t, model.DateOf(testutil.Now), txn.Date)
	assert.NotEmpty(t, txn.ID)

	assert.Equal(t, "Added expense of ₹1,500 for Food", f.speaker.Last())
	assert.Contains(t, f.speaker.Last(), "1,500")
	assert.Contains(t, f.speaker.Last(), "Food")
	require.Len(t, f.presenter.Snapshots, 1)
	assert.Equal(t, testutil.Toast{Message: "Expense of ₹1,500 added successfully!", Level: service.ToastSuccess}, f.presenter.Toasts[0])
}

func TestHandle_AddDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.exec.Handle(ctx, "add income 5000")
	f.exec.Handle(ctx, "add expense 200 for gizmos")

	txns := f.ledger.Transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, model.OtherCategory, txns[0].Category)
	assert.Equal(t, "Income from Other", txns[0].Description)
	assert.Equal(t, "Added income of ₹5,000 from Other", f.speaker.Spoken[0])
	assert.Equal(t, model.OtherCategory, txns[1].Category)
	assert.Equal(t, "Expense for Other", txns[1].Description)
}

func TestHandle_SetBudgetScenario(t *testing.T) {
	f := newFixture(t, testutil.WithTransactions(
		testutil.Txn().Expense(700).Category("Food").Build(),
		testutil.Txn().Expense(300).Category("Food").On(model.NewDate(2025, time.August, 2)).Build(),
	))

	resp := f.exec.Handle(context.Background(), "set budget 20000 for food")

	assert.True(t, resp.Mutated)
	budgets := f.ledger.Budgets()
	require.Len(t, budgets, 1)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.True(t, decimal.NewFromInt(20000).Equal(budgets[0].Limit))
	assert.True(t, f.ledger.Aggregator().CategorySpend("Food").Equal(budgets[0].Spent))
	assert.Equal(t, "Set budget of ₹20,000 for Food", f.speaker.Last())
	assert.Equal(t, "Budget set for Food: ₹20,000", f.presenter.Toasts[0].Message)
}

func TestHandle_SetBudgetOverwritesAndKeepsRawToken(t *testing.T) {
	f := newFixture(t, testutil.WithBudgets(model.Budget{Category: "Food", Limit: decimal.NewFromInt(100)}))
	ctx := context.Background()

	f.exec.Handle(ctx, "set budget 900 for food")
	f.exec.Handle(ctx, "set budget 50 for pets")

	budgets := f.ledger.Budgets()
	require.Len(t, budgets, 2)
	assert.True(t, decimal.NewFromInt(900).Equal(budgets[0].Limit))
	assert.Equal(t, "pets", budgets[1].Category)
}

func TestExecute_SetBudgetMissingCategory(t *testing.T) {
	f := newFixture(t)

	resp := f.exec.Execute(context.Background(), intent.SetBudget{Amount: decimal.NewFromInt(10)})

	assert.False(t, resp.Mutated)
	assert.Equal(t, ReplyMissingCategory, f.speaker.Last())
	assert.Empty(t, f.ledger.Budgets())
}

func TestHandle_DeleteLastOnEmptyList(t *testing.T) {
	store := testutil.NewMemoryStore()
	f := newFixture(t, testutil.WithStore(store))

	resp := f.exec.Handle(context.Background(), "delete last transaction")

	assert.False(t, resp.Mutated)
	assert.Equal(t, ReplyNothingToDelete, f.speaker.Last())
	assert.Zero(t, store.Writes)
	assert.Empty(t, f.presenter.Snapshots)
}

func TestHandle_DeleteLast(t *testing.T) {
	f := newFixture(t, testutil.WithSamples())

	f.exec.Handle(context.Background(), "remove last transaction")

	assert.Equal(t, 4, f.ledger.Len())
	assert.Equal(t, "Deleted last transaction: expense of ₹12,000", f.speaker.Last())
	assert.Equal(t, ToastDeletedLast, f.presenter.Toasts[0].Message)
}

func TestHandle_DeleteThenReAddRoundTrip(t *testing.T) {
	f := newFixture(t, testutil.WithSamples())
	ctx := context.Background()
	income := f.ledger.Aggregator().MonthlyIncome()
	expenses := f.ledger.Aggregator().MonthlyExpenses()

	f.exec.Handle(ctx, "add expense 450 for transport")
	f.exec.Handle(ctx, "delete last transaction")
	f.exec.Handle(ctx, "add expense 450 for transport")
	f.exec.Handle(ctx, "delete last transaction")

	assert.True(t, income.Equal(f.ledger.Aggregator().MonthlyIncome()))
	assert.True(t, expenses.Equal(f.ledger.Aggregator().MonthlyExpenses()))
}

func TestHandle_Unrecognized(t *testing.T) {
	store := testutil.NewMemoryStore()
	f := newFixture(t, testutil.WithStore(store))

	resp := f.exec.Handle(context.Background(), "xyz nonsense command")

	assert.Equal(t, intent.KindUnrecognized, resp.Intent.Kind())
	assert.False(t, resp.Mutated)
	assert.Equal(t, ReplyUnrecognized, f.speaker.Last())
	assert.Empty(t, f.presenter.Navigation)
	assert.Zero(t, store.Writes)
}

func TestHandle_ReadOnlyQueries(t *testing.T) {
	f := newFixture(t, testutil.WithSamples())
	ctx := context.Background()

	tests := []struct {
		utterance string
		want      string
	}{
		{"what's my balance", "Your current balance is ₹32,000"},
		{"what are my expenses", "Your monthly expenses are ₹35,000"},
		{"how much have i spent on food", "You have spent ₹15,000 on Food this month"},
		{"how much have i spent on food this month", "You have spent ₹15,000 on Food this month"},
		{"spending on rockets", "I couldn't find spending data for rockets"},
		{"give me advice", ReplyAdvice},
		{"monthly report", "Your monthly report: Income ₹55,000, Expenses ₹35,000, Net savings ₹20,000"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			resp := f.exec.Handle(ctx, tt.utterance)
			assert.Equal(t, tt.want, resp.Reply)
			assert.Equal(t, tt.want, f.speaker.Last())
			assert.False(t, resp.Mutated)
		})
	}
	assert.Equal(t, 5, f.ledger.Len())
}

func TestHandle_Navigation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.exec.Handle(ctx, "go to analytics")
	f.exec.Handle(ctx, "show my budgets")

	assert.Equal(t, []model.Tab{model.TabAnalytics, model.TabBudget}, f.presenter.Navigation)
	assert.Equal(t, []string{"Showing analytics", ReplyShowBudgets}, f.speaker.Spoken)
}

func TestHandle_Help(t *testing.T) {
	f := newFixture(t)

	f.exec.Handle(context.Background(), "help")

	require.Len(t, f.presenter.Help, 1)
	assert.Equal(t, intent.Examples(), f.presenter.Help[0])
	assert.Equal(t, ReplyHelp, f.speaker.Last())
}

func TestHandle_Export(t *testing.T) {
	f := newFixture(t, testutil.WithSamples())

	f.exec.Handle(context.Background(), "export")

	require.Len(t, f.exporter.Exported, 1)
	assert.Len(t, f.exporter.Exported[0], 5)
	assert.Equal(t, ReplyExported, f.speaker.Last())
	assert.Equal(t, ToastExported, f.presenter.Toasts[0].Message)
}

func TestHandle_ExportFailure(t *testing.T) {
	f := newFixture(t)
	f.exporter.Err = errors.New("disk full")

	resp := f.exec.Handle(context.Background(), "download data")

	assert.Empty(t, resp.Reply)
	assert.Empty(t, f.speaker.Spoken)
	assert.Equal(t, testutil.Toast{Message: ToastExportFailed, Level: service.ToastError}, f.presenter.Toasts[0])
}

func TestHandle_VoiceDisabledSpeaksNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.exec.SetVoiceResponse(ctx, false)

	resp := f.exec.Handle(ctx, "add expense 10 for food")

	assert.Equal(t, "Added expense of ₹10 for Food", resp.Reply)
	assert.Empty(t, f.speaker.Spoken)
	assert.Equal(t, 1, f.ledger.Len())
}

func TestHandle_SpeakerFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	f.speaker.Err = errors.New("no audio device")

	resp := f.exec.Handle(context.Background(), "add expense 10 for food")

	assert.True(t, resp.Mutated)
	assert.Equal(t, 1, f.ledger.Len())
}

func TestHandle_PersistenceFailureKeepsState(t *testing.T) {
	store := testutil.NewMemoryStore()
	f := newFixture(t, testutil.WithStore(store))
	store.FailSet = true

	resp := f.exec.Handle(context.Background(), "add income 100 from salary")

	assert.True(t, resp.Mutated)
	assert.Equal(t, 1, f.ledger.Len())
	assert.Equal(t, "Added income of ₹100 from Salary", f.speaker.Last())
}

func TestExecute_RecoversFromPanics(t *testing.T) {
	f := newFixture(t)
	f.exec.presenter = panickingPresenter{&testutil.RecordingPresenter{}}

	resp := f.exec.Execute(context.Background(), intent.Help{})

	assert.Equal(t, ReplyError, resp.Reply)
	assert.Equal(t, ReplyError, f.speaker.Last())
	assert.Equal(t, intent.KindHelp, resp.Intent.Kind())
}

type panickingPresenter struct{ *testutil.RecordingPresenter }

func (panickingPresenter) ShowHelp([]string) { panic("render failed") }

func TestNew_NilCollaborators(t *testing.T) {
	exec := New(testutil.NewLedger(t), nil, nil)

	resp := exec.Handle(context.Background(), "export")

	assert.Empty(t, resp.Reply)
	resp = exec.Handle(context.Background(), "add expense 5 for food")
	assert.True(t, resp.Mutated)
}
