package model

import "github.com/shopspring/decimal"

// BudgetStatus classifies how much of a budget has been used.
type BudgetStatus string

const (
	// BudgetSafe means less than 80% used.
	BudgetSafe BudgetStatus = "safe"
	// BudgetWarning means at least 80% used.
	BudgetWarning BudgetStatus = "warning"
	// BudgetDanger means the limit has been reached or exceeded.
	BudgetDanger BudgetStatus = "danger"
)

// Budget is a monthly spending limit for one expense category.
// Spent is a cache recomputed on every refresh; it is never authoritative.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

// Percentage returns spent as a percentage of the limit.
func (b Budget) Percentage() float64 {
	if !b.Limit.IsPositive() {
		return 0
	}
	return b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// Status returns the progress class for the budget.
func (b Budget) Status() BudgetStatus {
	pct := b.Percentage()
	switch {
	case pct >= 100:
		return BudgetDanger
	case pct >= 80:
		return BudgetWarning
	}
	return BudgetSafe
}
