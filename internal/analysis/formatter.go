package analysis

import (
	"fmt"
	"strings"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
	"github.com/shopspring/decimal"
)

// CLIFormatter renders snapshots for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
	}
}

// FormatReport renders the monthly report: summary, health, budgets,
// category breakdown, trend and insights.
func (f *CLIFormatter) FormatReport(s Snapshot) string {
	sections := []string{
		f.formatHeader(s),
		f.FormatSummary(s),
		f.formatHealth(s),
	}

	if len(s.Budgets) > 0 {
		sections = append(sections, f.FormatBudgets(s.Budgets))
	}
	if len(s.ExpenseChart) > 0 {
		sections = append(sections, f.formatExpenseChart(s.ExpenseChart))
	}
	sections = append(sections, f.formatTrend(s.Trend), f.formatInsights(s.Insights))

	return strings.Join(sections, "\n\n")
}

// FormatSummary renders the balance and monthly totals.
func (f *CLIFormatter) FormatSummary(s Snapshot) string {
	title := f.styles.Subtitle.Render("This Month:")
	lines := []string{
		fmt.Sprintf("%-16s %s", "Balance", f.styles.Score.Render(money.Format(s.Balance))),
		fmt.Sprintf("%-16s %s", "Income", f.styles.Income.Render(money.Format(s.MonthlyIncome))),
		fmt.Sprintf("%-16s %s", "Expenses", f.styles.Expense.Render(money.Format(s.MonthlyExpenses))),
		fmt.Sprintf("%-16s %s", "Net savings", money.Format(s.NetSavings)),
		fmt.Sprintf("%-16s %.1f%%", "Savings rate", s.SavingsRate),
	}
	return title + "\n" + strings.Join(lines, "\n")
}

// FormatTransactions renders a transaction table.
func (f *CLIFormatter) FormatTransactions(transactions []model.Transaction) string {
	if len(transactions) == 0 {
		return f.styles.Subtle.Render("No transactions found")
	}

	dateWidth := 12
	typeWidth := 9
	categoryWidth := 15
	descWidth := 30
	amountWidth := 12

	headerStyle := f.styles.Subtle.Bold(true)
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %*s",
		dateWidth, "Date",
		typeWidth, "Type",
		categoryWidth, "Category",
		descWidth, "Description",
		amountWidth, "Amount")
	rows := []string{
		headerStyle.Render(header),
		f.styles.Subtle.Render(strings.Repeat("─", len(header))),
	}

	for _, t := range transactions {
		amount := money.Format(t.Amount)
		if t.IsExpense() {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		row := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
			dateWidth, t.Date.Display(),
			typeWidth, t.Type.Title(),
			categoryWidth, truncate(t.Category, categoryWidth),
			descWidth, truncate(t.Description, descWidth),
			f.styles.ForType(t.Type).Render(fmt.Sprintf("%*s", amountWidth, amount)))
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// FormatBudgets renders each budget with a progress bar.
func (f *CLIFormatter) FormatBudgets(rows []BudgetRow) string {
	title := f.styles.Subtitle.Render("Budgets:")
	if len(rows) == 0 {
		return title + "\n" + f.styles.Subtle.Render("No budgets set")
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		style := f.styles.ForStatus(row.Status)
		bar := f.styles.RenderProgressBar(row.Percentage/100, 20)
		lines = append(lines, fmt.Sprintf("%-15s %s %s / %s %s",
			truncate(row.Budget.Category, 15),
			style.Render(bar),
			money.Format(row.Budget.Spent),
			money.Format(row.Budget.Limit),
			style.Render(fmt.Sprintf("(%.0f%%)", row.Percentage))))
	}
	return title + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatHeader(s Snapshot) string {
	title := f.styles.Title.Render("📊 Monthly Report")
	period := f.styles.Subtitle.Render(s.GeneratedAt.Format("January 2006"))
	return title + "\n" + period
}

func (f *CLIFormatter) formatHealth(s Snapshot) string {
	style := f.styles.ForScore(s.HealthScore)
	score := style.Render(fmt.Sprintf("Financial Health Score: %d/100", s.HealthScore))
	bar := style.Render(f.styles.RenderProgressBar(float64(s.HealthScore)/100, 30))

	tips := make([]string, 0, len(s.HealthTips))
	for _, tip := range s.HealthTips {
		tips = append(tips, f.styles.Info.Render("•")+" "+tip)
	}
	return score + "\n" + bar + "\n" + strings.Join(tips, "\n")
}

func (f *CLIFormatter) formatExpenseChart(totals []CategoryTotal) string {
	title := f.styles.Subtitle.Render("Expenses by Category:")

	sum := decimal.Zero
	for _, c := range totals {
		sum = sum.Add(c.Amount)
	}

	lines := make([]string, 0, len(totals))
	for _, c := range totals {
		share := 0.0
		if sum.IsPositive() {
			share = c.Amount.Div(sum).InexactFloat64()
		}
		lines = append(lines, fmt.Sprintf("%-15s %s %s",
			truncate(c.Category, 15),
			f.styles.Expense.Render(f.styles.RenderProgressBar(share, 20)),
			money.Format(c.Amount)))
	}
	return title + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatTrend(trend []MonthTotal) string {
	title := f.styles.Subtitle.Render("Income vs Expenses:")
	lines := make([]string, 0, len(trend))
	for _, m := range trend {
		lines = append(lines, fmt.Sprintf("%-8s %s %s",
			m.Label,
			f.styles.Income.Render(fmt.Sprintf("%14s", money.Format(m.Income))),
			f.styles.Expense.Render(fmt.Sprintf("%14s", money.Format(m.Expense)))))
	}
	return title + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatInsights(ins Insights) string {
	lines := []string{
		fmt.Sprintf("Total transactions: %d", ins.TotalTransactions),
		fmt.Sprintf("Average amount: %s", money.Format(ins.AverageAmount)),
		fmt.Sprintf("Largest expense: %s", money.Format(ins.LargestExpense)),
		fmt.Sprintf("Most frequent category: %s", ins.MostFrequentCategory),
	}
	return f.styles.RenderBox(strings.Join(lines, "\n"), "💡 Insights", f.styles.InsightBox)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
