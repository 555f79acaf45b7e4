// Package intent classifies voice utterances into commands.
package intent

import (
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/shopspring/decimal"
)

// Kind names an intent variant.
type Kind string

// Intent kinds in matching priority order.
const (
	KindNavigate       Kind = "navigate"
	KindQueryBalance   Kind = "query_balance"
	KindQueryExpenses  Kind = "query_expenses"
	KindAddTransaction Kind = "add_transaction"
	KindSetBudget      Kind = "set_budget"
	KindQuerySpending  Kind = "query_spending"
	KindDeleteLast     Kind = "delete_last"
	KindAdvice         Kind = "advice"
	KindHelp           Kind = "help"
	KindExport         Kind = "export"
	KindShowBudgets    Kind = "show_budgets"
	KindMonthlyReport  Kind = "monthly_report"
	KindUnrecognized   Kind = "unrecognized"
)

// Intent is a classified command with its arguments. The concrete types
// below are the only implementations.
type Intent interface {
	Kind() Kind
	intent()
}

// Navigate switches the dashboard to a tab.
type Navigate struct {
	Tab model.Tab
}

// QueryBalance asks for the current balance.
type QueryBalance struct{}

// QueryExpenses asks for this month's total expenses.
type QueryExpenses struct{}

// AddTransaction records income or an expense. Category and Description
// hold the raw captured tokens and may be empty.
type AddTransaction struct {
	Amount      decimal.Decimal
	Type        model.TransactionType
	Category    string
	Description string
}

// SetBudget sets a monthly limit. Category is the raw captured token.
type SetBudget struct {
	Amount   decimal.Decimal
	Category string
}

// QuerySpending asks how much was spent this month on a category token.
type QuerySpending struct {
	Category string
}

// DeleteLast removes the most recently appended transaction.
type DeleteLast struct{}

// Advice asks for financial advice.
type Advice struct{}

// Help shows the voice command reference.
type Help struct{}

// Export writes the transaction list to CSV.
type Export struct{}

// ShowBudgets lists the current budgets.
type ShowBudgets struct{}

// MonthlyReport summarizes this month's income, expenses and savings.
type MonthlyReport struct{}

// Unrecognized carries an utterance no rule matched.
type Unrecognized struct {
	Utterance string
}

func (Navigate) Kind() Kind       { return KindNavigate }
func (QueryBalance) Kind() Kind   { return KindQueryBalance }
func (QueryExpenses) Kind() Kind  { return KindQueryExpenses }
func (AddTransaction) Kind() Kind { return KindAddTransaction }
func (SetBudget) Kind() Kind      { return KindSetBudget }
func (QuerySpending) Kind() Kind  { return KindQuerySpending }
func (DeleteLast) Kind() Kind     { return KindDeleteLast }
func (Advice) Kind() Kind         { return KindAdvice }
func (Help) Kind() Kind           { return KindHelp }
func (Export) Kind() Kind         { return KindExport }
func (ShowBudgets) Kind() Kind    { return KindShowBudgets }
func (MonthlyReport) Kind() Kind  { return KindMonthlyReport }
func (Unrecognized) Kind() Kind   { return KindUnrecognized }

func (Navigate) intent()       {}
func (QueryBalance) intent()   {}
func (QueryExpenses) intent()  {}
func (AddTransaction) intent() {}
func (SetBudget) intent()      {}
func (QuerySpending) intent()  {}
func (DeleteLast) intent()     {}
func (Advice) intent()         {}
func (Help) intent()           {}
func (Export) intent()         {}
func (ShowBudgets) intent()    {}
func (MonthlyReport) intent()  {}
func (Unrecognized) intent()   {}
