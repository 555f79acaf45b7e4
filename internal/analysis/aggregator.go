// Package analysis computes month-scoped totals and dashboard data from the
// transaction list. Everything here is a pure function of its inputs.
package analysis

import (
	"time"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregator evaluates transaction totals relative to an evaluation instant.
// "Current month" means the month and year of that instant.
type Aggregator struct {
	now          time.Time
	transactions []model.Transaction
}

// NewAggregator creates an aggregator over transactions evaluated at now.
func NewAggregator(transactions []model.Transaction, now time.Time) Aggregator {
	return Aggregator{transactions: transactions, now: now}
}

// Now returns the evaluation instant.
func (a Aggregator) Now() time.Time {
	return a.now
}

func (a Aggregator) monthlySum(keep func(model.Transaction) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range a.transactions {
		if t.Date.SameMonth(a.now) && keep(t) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// MonthlyIncome sums income in the current month.
func (a Aggregator) MonthlyIncome() decimal.Decimal {
	return a.monthlySum(model.Transaction.IsIncome)
}

// MonthlyExpenses sums expenses in the current month.
func (a Aggregator) MonthlyExpenses() decimal.Decimal {
	return a.monthlySum(model.Transaction.IsExpense)
}

// CategorySpend sums current-month expenses in exactly the given category.
func (a Aggregator) CategorySpend(category string) decimal.Decimal {
	return a.monthlySum(func(t model.Transaction) bool {
		return t.IsExpense() && t.Category == category
	})
}

// NetSavings is monthly income minus monthly expenses.
func (a Aggregator) NetSavings() decimal.Decimal {
	return a.MonthlyIncome().Sub(a.MonthlyExpenses())
}

// SavingsRate is net savings as a percentage of monthly income, or 0 when
// there is no income this month.
func (a Aggregator) SavingsRate() float64 {
	income := a.MonthlyIncome()
	if income.IsZero() {
		return 0
	}
	return a.NetSavings().Div(income).Mul(hundred).InexactFloat64()
}

// HealthScore is four times the savings rate, clamped to [0, 100].
func (a Aggregator) HealthScore() float64 {
	score := a.SavingsRate() * 4
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

// MostFrequentCategory returns the category with the most transactions of
// all time. Ties go to the category seen first. It returns
// model.NoCategory for an empty ledger.
func (a Aggregator) MostFrequentCategory() string {
	if len(a.transactions) == 0 {
		return model.NoCategory
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range a.transactions {
		if _, ok := counts[t.Category]; !ok {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}

	best := order[0]
	for _, cat := range order[1:] {
		if counts[cat] > counts[best] {
			best = cat
		}
	}
	return best
}

// CategoryTotal is one slice of the expense chart.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// ExpensesByCategory sums all-time expenses per category in order of first
// occurrence.
func (a Aggregator) ExpensesByCategory() []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, t := range a.transactions {
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}
	return totals
}

// MonthTotal holds income and expense sums for one calendar month.
type MonthTotal struct {
	Month   time.Time
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TrendMonths is the number of trailing months in the income/expense chart.
const TrendMonths = 6

// MonthlyTrend returns income and expense sums for the trailing months
// ending with the current one, oldest first.
func (a Aggregator) MonthlyTrend(months int) []MonthTotal {
	if months <= 0 {
		return nil
	}

	start := time.Date(a.now.Year(), a.now.Month(), 1, 0, 0, 0, 0, time.UTC)
	trend := make([]MonthTotal, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i-(months-1), 0)
		trend[i] = MonthTotal{
			Month:   month,
			Label:   month.Format("Jan 06"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[month.Format("2006-01")] = i
	}

	for _, t := range a.transactions {
		i, ok := index[t.Date.MonthKey()]
		if !ok {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			trend[i].Income = trend[i].Income.Add(t.Amount)
		case model.TypeExpense:
			trend[i].Expense = trend[i].Expense.Add(t.Amount)
		}
	}

	return trend
}

// Insights are the headline statistics on the analytics tab.
type Insights struct {
	AverageAmount        decimal.Decimal
	LargestExpense       decimal.Decimal
	MostFrequentCategory string
	TotalTransactions    int
}

// Insights computes all-time spending statistics.
func (a Aggregator) Insights() Insights {
	ins := Insights{
		TotalTransactions:    len(a.transactions),
		AverageAmount:        decimal.Zero,
		LargestExpense:       decimal.Zero,
		MostFrequentCategory: a.MostFrequentCategory(),
	}
	if len(a.transactions) == 0 {
		return ins
	}

	total := decimal.Zero
	for _, t := range a.transactions {
		total = total.Add(t.Amount)
		if t.IsExpense() && t.Amount.GreaterThan(ins.LargestExpense) {
			ins.LargestExpense = t.Amount
		}
	}
	ins.AverageAmount = total.Div(decimal.NewFromInt(int64(len(a.transactions))))
	return ins
}

// HealthTips returns the advice lines shown beside a health score.
func HealthTips(score float64) []string {
	first := "Room for improvement in savings"
	if score > 80 {
		first = "Excellent financial health!"
	}
	return []string{
		first,
		"Consider increasing your emergency fund",
		"Review and optimize your budget regularly",
	}
}
