package analysis

import (
	"testing"
	"time"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Apply(t *testing.T) {
	transactions := model.SampleTransactions()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter newest first", filter: Filter{}, want: []string{"5", "4", "3", "2", "1"}},
		{name: "income only", filter: Filter{Type: model.TypeIncome}, want: []string{"4", "1"}},
		{name: "exact category", filter: Filter{Category: "Food"}, want: []string{"2"}},
		{name: "category is case sensitive", filter: Filter{Category: "food"}, want: []string{}},
		{name: "search description", filter: Filter{Search: "GAMING"}, want: []string{"5"}},
		{name: "search category", filter: Filter{Search: "free"}, want: []string{"4"}},
		{name: "combined", filter: Filter{Type: model.TypeExpense, Search: "and"}, want: []string{"5", "3", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(transactions)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDisplayOrder_StableAndNonMutating(t *testing.T) {
	day := model.NewDate(2025, time.September, 1)
	transactions := []model.Transaction{
		{ID: "a", Date: day},
		{ID: "b", Date: model.NewDate(2025, time.September, 3)},
		{ID: "c", Date: day},
	}

	sorted := DisplayOrder(transactions)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
	assert.Equal(t, "a", transactions[0].ID)
}

func TestRecent(t *testing.T) {
	transactions := model.SampleTransactions()
	transactions = append(transactions, model.Transaction{ID: "6", Date: model.NewDate(2025, time.September, 20)})

	recent := Recent(transactions)

	require.Len(t, recent, RecentCount)
	assert.Equal(t, "6", recent[0].ID)
	assert.Equal(t, "2", recent[4].ID)
}

func TestBuildSnapshot(t *testing.T) {
	budgets := model.SampleBudgets()
	budgets[0].Spent = budgets[0].Limit

	snap := BuildSnapshot(SnapshotInput{
		Now:          september,
		Settings:     model.DefaultSettings(),
		Categories:   model.DefaultCategories(),
		Transactions: model.SampleTransactions(),
		Budgets:      budgets,
		Filter:       Filter{Type: model.TypeExpense},
	})

	assertDecimal(t, 32000, snap.Balance)
	assertDecimal(t, 55000, snap.MonthlyIncome)
	assert.Equal(t, 100, snap.HealthScore)
	assert.Equal(t, "Excellent financial health!", snap.HealthTips[0])
	assert.Len(t, snap.Rows, 3)
	assert.Len(t, snap.Recent, 5)
	assert.Len(t, snap.Trend, TrendMonths)

	require.NotEmpty(t, snap.Budgets)
	food := snap.Budgets[0]
	assert.Equal(t, "Food", food.Budget.Category)
	assertDecimal(t, 15000, food.Budget.Spent)
	assert.InDelta(t, 75, food.Percentage, 0.0001)
	assert.Equal(t, model.BudgetSafe, food.Status)
	assertDecimal(t, 20000, budgets[0].Spent)
}

func TestRefreshBudgets_Status(t *testing.T) {
	day := model.NewDate(2025, time.September, 2)
	agg := NewAggregator([]model.Transaction{
		txn(model.TypeExpense, 850, "Food", day),
		txn(model.TypeExpense, 1200, "Transport", day),
	}, september)

	rows := RefreshBudgets(agg, []model.Budget{
		{Category: "Food", Limit: decimalOf(1000)},
		{Category: "Transport", Limit: decimalOf(1000)},
		{Category: "Bills", Limit: decimalOf(1000)},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, model.BudgetWarning, rows[0].Status)
	assert.Equal(t, model.BudgetDanger, rows[1].Status)
	assert.Equal(t, model.BudgetSafe, rows[2].Status)
	assertDecimal(t, 0, rows[2].Budget.Spent)
}
