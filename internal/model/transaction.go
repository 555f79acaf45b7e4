package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	// TypeIncome marks money received.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money spent.
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType parses a case-insensitive transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Title returns the capitalized type name used in generated descriptions.
func (t TransactionType) Title() string {
	switch t {
	case TypeIncome:
		return "Income"
	case TypeExpense:
		return "Expense"
	}
	return string(t)
}

// Transaction represents a single ledger entry.
// Transactions are never partially mutated: edits replace the whole value.
type Transaction struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// Sign returns "+" for income and "-" for expenses, as shown in tables.
func (t Transaction) Sign() string {
	if t.IsExpense() {
		return "-"
	}
	return "+"
}
