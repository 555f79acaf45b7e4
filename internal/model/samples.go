package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SampleTransactions returns the demo ledger shown on first launch.
func SampleTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Type: TypeIncome, Amount: decimal.NewFromInt(50000), Category: "Salary", Description: "Monthly salary", Date: NewDate(2025, time.September, 1)},
		{ID: "2", Type: TypeExpense, Amount: decimal.NewFromInt(15000), Category: "Food", Description: "Groceries and dining", Date: NewDate(2025, time.September, 5)},
		{ID: "3", Type: TypeExpense, Amount: decimal.NewFromInt(8000), Category: "Transport", Description: "Fuel and maintenance", Date: NewDate(2025, time.September, 7)},
		{ID: "4", Type: TypeIncome, Amount: decimal.NewFromInt(5000), Category: "Freelance", Description: "Web development project", Date: NewDate(2025, time.September, 10)},
		{ID: "5", Type: TypeExpense, Amount: decimal.NewFromInt(12000), Category: "Entertainment", Description: "Movies and gaming", Date: NewDate(2025, time.September, 12)},
	}
}

// SampleBudgets returns the demo budgets shown on first launch.
func SampleBudgets() []Budget {
	return []Budget{
		{Category: "Food", Limit: decimal.NewFromInt(20000), Spent: decimal.NewFromInt(15000)},
		{Category: "Transport", Limit: decimal.NewFromInt(10000), Spent: decimal.NewFromInt(8000)},
		{Category: "Entertainment", Limit: decimal.NewFromInt(15000), Spent: decimal.NewFromInt(12000)},
	}
}
