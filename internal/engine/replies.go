package engine

import (
	"fmt"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
	"github.com/shopspring/decimal"
)

// Fixed replies.
const (
	ReplyAdvice          = "Based on your spending patterns, I recommend maintaining your current savings rate and consider diversifying your investments for better returns."
	ReplyHelp            = "Voice command help is now displayed. You can use commands like add expense, show balance, or set budget."
	ReplyExported        = "Your financial data has been exported successfully"
	ReplyShowBudgets     = "Here are your current budgets"
	ReplyNothingToDelete = "No transactions to delete"
	ReplyMissingCategory = "Please specify a category for the budget."
	ReplyUnrecognized    = `I didn't understand that command. Try saying "help" for available voice commands.`
	ReplyError           = "Sorry, there was an error processing your command."

	ToastExported       = "Data exported successfully!"
	ToastExportFailed   = "Error exporting data"
	ToastDeletedLast    = "Last transaction deleted successfully!"
	ToastReport         = "Monthly report generated!"
	ToastTxnAdded       = "Transaction added successfully!"
	ToastTxnUpdated     = "Transaction updated successfully!"
	ToastTxnDeleted     = "Transaction deleted successfully!"
	ToastTxnSaveFailed  = "Error saving transaction"
	ToastBudgetSet      = "Budget set successfully!"
	ToastBudgetRemoved  = "Budget removed successfully!"
	ToastFillAllFields  = "Please fill all fields"
	ToastImportComplete = "Import completed successfully!"
)

func replyNavigate(tab model.Tab) string {
	return "Showing " + string(tab)
}

func replyBalance(balance decimal.Decimal) string {
	return "Your current balance is " + money.Format(balance)
}

func replyExpenses(total decimal.Decimal) string {
	return "Your monthly expenses are " + money.Format(total)
}

func replyAdded(t model.Transaction) string {
	if t.IsIncome() {
		return fmt.Sprintf("Added income of %s from %s", money.Format(t.Amount), t.Category)
	}
	return fmt.Sprintf("Added expense of %s for %s", money.Format(t.Amount), t.Category)
}

func toastAdded(t model.Transaction) string {
	return fmt.Sprintf("%s of %s added successfully!", t.Type.Title(), money.Format(t.Amount))
}

func replyAddFailed(t model.TransactionType) string {
	return fmt.Sprintf("Sorry, I couldn't add that %s. Please try again.", t)
}

func replyBudgetSet(b model.Budget) string {
	return fmt.Sprintf("Set budget of %s for %s", money.Format(b.Limit), b.Category)
}

func toastBudgetSet(b model.Budget) string {
	return fmt.Sprintf("Budget set for %s: %s", b.Category, money.Format(b.Limit))
}

func replySpent(category string, spent decimal.Decimal) string {
	return fmt.Sprintf("You have spent %s on %s this month", money.Format(spent), category)
}

func replyNoSpendingData(token string) string {
	return "I couldn't find spending data for " + token
}

func replyDeletedLast(t model.Transaction) string {
	return fmt.Sprintf("Deleted last transaction: %s of %s", t.Type, money.Format(t.Amount))
}

func replyReport(income, expenses, net decimal.Decimal) string {
	return fmt.Sprintf("Your monthly report: Income %s, Expenses %s, Net savings %s",
		money.Format(income), money.Format(expenses), money.Format(net))
}

func toastTheme(theme model.Theme) string {
	return fmt.Sprintf("Switched to %s theme", theme)
}

// defaultDescription is used when a voice command captures no description.
func defaultDescription(t model.TransactionType, category string) string {
	if t == model.TypeIncome {
		return "Income from " + category
	}
	return "Expense for " + category
}
