package analysis

import (
	"math"
	"time"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/shopspring/decimal"
)

// BudgetRow is a budget with its spend recomputed for the current month.
type BudgetRow struct {
	Status     model.BudgetStatus
	Budget     model.Budget
	Percentage float64
}

// Snapshot is everything a presenter needs to draw every tab.
type Snapshot struct {
	GeneratedAt     time.Time
	Settings        model.Settings
	Filter          Filter
	Balance         decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	NetSavings      decimal.Decimal
	Insights        Insights
	Recent          []model.Transaction
	Rows            []model.Transaction
	Budgets         []BudgetRow
	ExpenseChart    []CategoryTotal
	Trend           []MonthTotal
	HealthTips      []string
	Categories      model.CategorySet
	SavingsRate     float64
	HealthScore     int
}

// SnapshotInput is the ledger state a snapshot is derived from.
type SnapshotInput struct {
	Now          time.Time
	Settings     model.Settings
	Filter       Filter
	Categories   model.CategorySet
	Transactions []model.Transaction
	Budgets      []model.Budget
}

// BuildSnapshot derives all dashboard data from the ledger state.
func BuildSnapshot(in SnapshotInput) Snapshot {
	agg := NewAggregator(in.Transactions, in.Now)
	score := agg.HealthScore()

	return Snapshot{
		GeneratedAt:     in.Now,
		Settings:        in.Settings,
		Filter:          in.Filter,
		Categories:      in.Categories,
		Balance:         in.Settings.Balance,
		MonthlyIncome:   agg.MonthlyIncome(),
		MonthlyExpenses: agg.MonthlyExpenses(),
		NetSavings:      agg.NetSavings(),
		SavingsRate:     agg.SavingsRate(),
		HealthScore:     int(math.Round(score)),
		HealthTips:      HealthTips(score),
		Insights:        agg.Insights(),
		Recent:          Recent(in.Transactions),
		Rows:            in.Filter.Apply(in.Transactions),
		Budgets:         RefreshBudgets(agg, in.Budgets),
		ExpenseChart:    agg.ExpensesByCategory(),
		Trend:           agg.MonthlyTrend(TrendMonths),
	}
}

// RefreshBudgets recomputes each budget's spend from the current month's
// expenses. The input slice is not modified.
func RefreshBudgets(agg Aggregator, budgets []model.Budget) []BudgetRow {
	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		b.Spent = agg.CategorySpend(b.Category)
		rows = append(rows, BudgetRow{
			Budget:     b,
			Percentage: b.Percentage(),
			Status:     b.Status(),
		})
	}
	return rows
}
