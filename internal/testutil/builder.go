package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/shopspring/decimal"
)

var txnSeq atomic.Int64

// TxnBuilder builds transactions fluently. Unset fields default to an
// expense of 100 in "Other" dated at Now.
type TxnBuilder struct {
	txn model.Transaction
}

// Txn starts a new transaction builder with a unique id.
func Txn() *TxnBuilder {
	return &TxnBuilder{txn: model.Transaction{
		ID:          fmt.Sprintf("txn-%d", txnSeq.Add(1)),
		Type:        model.TypeExpense,
		Amount:      decimal.NewFromInt(100),
		Category:    model.OtherCategory,
		Description: "test transaction",
		Date:        model.DateOf(Now),
	}}
}

// ID sets the id.
func (b *TxnBuilder) ID(id string) *TxnBuilder {
	b.txn.ID = id
	return b
}

// Income marks the transaction as income of amount.
func (b *TxnBuilder) Income(amount int64) *TxnBuilder {
	b.txn.Type = model.TypeIncome
	b.txn.Amount = decimal.NewFromInt(amount)
	return b
}

// Expense marks the transaction as an expense of amount.
func (b *TxnBuilder) Expense(amount int64) *TxnBuilder {
	b.txn.Type = model.TypeExpense
	b.txn.Amount = decimal.NewFromInt(amount)
	return b
}

// Category sets the category.
func (b *TxnBuilder) Category(category string) *TxnBuilder {
	b.txn.Category = category
	return b
}

// Description sets the description.
func (b *TxnBuilder) Description(description string) *TxnBuilder {
	b.txn.Description = description
	return b
}

// On sets the date.
func (b *TxnBuilder) On(date model.Date) *TxnBuilder {
	b.txn.Date = date
	return b
}

// Build returns the transaction.
func (b *TxnBuilder) Build() model.Transaction {
	return b.txn
}
