package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/shopspring/decimal"
)

// Entry is a manually entered transaction. A zero Date means today.
type Entry struct {
	Date        model.Date
	Amount      decimal.Decimal
	Type        model.TransactionType
	Category    string
	Description string
}

func (e *Executor) validateEntry(entry Entry) (model.Transaction, error) {
	if !entry.Type.Valid() {
		return model.Transaction{}, common.NewUserError(ToastFillAllFields,
			fmt.Errorf("%w: %q", common.ErrInvalidType, entry.Type))
	}
	if !entry.Amount.IsPositive() {
		return model.Transaction{}, common.NewUserError(ToastFillAllFields,
			fmt.Errorf("%w: %s", common.ErrInvalidAmount, entry.Amount))
	}

	category := e.resolver.ResolveOrOther(strings.TrimSpace(entry.Category), entry.Type)
	description := strings.TrimSpace(entry.Description)
	if description == "" {
		description = defaultDescription(entry.Type, category)
	}
	date := entry.Date
	if date.IsZero() {
		date = e.ledger.Today()
	}

	return model.Transaction{
		Type:        entry.Type,
		Amount:      entry.Amount,
		Category:    category,
		Description: description,
		Date:        date,
	}, nil
}

// Record adds a manually entered transaction.
func (e *Executor) Record(ctx context.Context, entry Entry) (model.Transaction, error) {
	txn, err := e.validateEntry(entry)
	if err != nil {
		e.presenter.Toast(common.UserMessage(err, ToastTxnSaveFailed), service.ToastError)
		return model.Transaction{}, err
	}

	txn = e.ledger.Append(ctx, txn)
	e.Refresh(ctx)
	e.presenter.Toast(ToastTxnAdded, service.ToastSuccess)
	return txn, nil
}

// Edit replaces the transaction with id, keeping the id.
func (e *Executor) Edit(ctx context.Context, id string, entry Entry) (model.Transaction, error) {
	txn, err := e.validateEntry(entry)
	if err != nil {
		e.presenter.Toast(common.UserMessage(err, ToastTxnSaveFailed), service.ToastError)
		return model.Transaction{}, err
	}

	txn.ID = id
	if err := e.ledger.Replace(ctx, txn); err != nil {
		e.presenter.Toast(ToastTxnSaveFailed, service.ToastError)
		return model.Transaction{}, err
	}
	e.Refresh(ctx)
	e.presenter.Toast(ToastTxnUpdated, service.ToastSuccess)
	return txn, nil
}

// Delete removes the transaction with id.
func (e *Executor) Delete(ctx context.Context, id string) (model.Transaction, error) {
	removed, err := e.ledger.Remove(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}
	e.Refresh(ctx)
	e.presenter.Toast(ToastTxnDeleted, service.ToastSuccess)
	return removed, nil
}

// SetBudgetLimit sets a budget from the form path. The category must be
// one of the expense categories and the limit must be positive.
func (e *Executor) SetBudgetLimit(ctx context.Context, category string, limit decimal.Decimal) (model.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" || !limit.IsPositive() {
		e.presenter.Toast(ToastFillAllFields, service.ToastError)
		return model.Budget{}, common.NewUserError(ToastFillAllFields, common.ErrMissingCategory)
	}
	canonical, ok := e.resolver.Resolve(category, model.TypeExpense)
	if !ok || !e.ledger.Categories().Contains(model.TypeExpense, canonical) {
		e.presenter.Toast(ToastFillAllFields, service.ToastError)
		return model.Budget{}, common.NewUserError(
			fmt.Sprintf("%q is not an expense category", category), common.ErrMissingCategory)
	}

	b, _ := e.ledger.SetBudget(ctx, canonical, limit)
	e.Refresh(ctx)
	e.presenter.Toast(ToastBudgetSet, service.ToastSuccess)
	return b, nil
}

// RemoveBudget deletes the budget for category.
func (e *Executor) RemoveBudget(ctx context.Context, category string) error {
	if err := e.ledger.RemoveBudget(ctx, category); err != nil {
		return err
	}
	e.Refresh(ctx)
	e.presenter.Toast(ToastBudgetRemoved, service.ToastSuccess)
	return nil
}

// Import appends transactions read from a file. Categories are resolved
// against the category set and fail closed to "Other".
func (e *Executor) Import(ctx context.Context, txns []model.Transaction) []model.Transaction {
	cleaned := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.Type.Valid() || t.Amount.IsNegative() {
			common.LogDebug("Skipping invalid imported transaction", common.Fields{"id": t.ID, "type": t.Type})
			continue
		}
		if !e.ledger.Categories().Contains(t.Type, t.Category) {
			t.Category = e.resolver.ResolveOrOther(t.Category, t.Type)
		}
		if t.Date.IsZero() {
			t.Date = e.ledger.Today()
		}
		cleaned = append(cleaned, t)
	}

	added := e.ledger.AppendAll(ctx, cleaned)
	e.Refresh(ctx)
	e.presenter.Toast(ToastImportComplete, service.ToastSuccess)
	return added
}

// ToggleTheme flips the theme.
func (e *Executor) ToggleTheme(ctx context.Context) model.Theme {
	theme := e.ledger.ToggleTheme(ctx)
	e.Refresh(ctx)
	e.presenter.Toast(toastTheme(theme), service.ToastSuccess)
	return theme
}

// SetTheme sets the theme.
func (e *Executor) SetTheme(ctx context.Context, theme model.Theme) {
	e.ledger.SetTheme(ctx, theme)
	e.Refresh(ctx)
	e.presenter.Toast(toastTheme(theme), service.ToastSuccess)
}

// SetVoiceResponse enables or disables spoken replies.
func (e *Executor) SetVoiceResponse(ctx context.Context, enabled bool) {
	e.ledger.SetVoiceResponse(ctx, enabled)
	e.Refresh(ctx)
}

// SetBalance sets the current balance.
func (e *Executor) SetBalance(ctx context.Context, balance decimal.Decimal) {
	e.ledger.SetBalance(ctx, balance)
	e.Refresh(ctx)
}
