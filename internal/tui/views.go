package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/tui/themes"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderTab()
	if m.showHelp {
		body = m.renderHelp()
	}

	sections := []string{m.renderHeader(), body, m.renderVoicePanel()}
	if len(m.toasts) > 0 {
		sections = append(sections, m.renderToasts())
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("💰 LedgerVox")

	tabs := make([]string, 0, len(model.Tabs))
	for i, t := range model.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if t == m.tab {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
	)
}

func (m Model) renderTab() string {
	switch m.tab {
	case model.TabTransactions:
		return m.renderTransactions()
	case model.TabBudget:
		return m.renderBudgets()
	case model.TabAnalytics:
		return m.renderAnalytics()
	}
	return m.renderDashboard()
}

func (m Model) renderDashboard() string {
	s := m.snapshot
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCard("Balance", money.Format(s.Balance), m.theme.Bold),
		m.renderCard("Monthly Income", money.Format(s.MonthlyIncome), m.theme.Income),
		m.renderCard("Monthly Expenses", money.Format(s.MonthlyExpenses), m.theme.Expense),
		m.renderCard("Net Savings", money.Format(s.NetSavings), m.styleForSign(s.NetSavings)),
	)

	recent := m.theme.Subtitle.Render("Recent Transactions")
	rows := m.renderRows(s.Recent, "No transactions yet")

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", recent, rows)
}

func (m Model) renderCard(label, value string, style lipgloss.Style) string {
	return m.theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Muted.Render(label),
		style.Render(value),
	))
}

func (m Model) styleForSign(d decimal.Decimal) lipgloss.Style {
	if d.IsNegative() {
		return m.theme.Expense
	}
	return m.theme.Income
}

func (m Model) renderTransactions() string {
	s := m.snapshot

	filter := "All"
	if s.Filter.Type != "" {
		filter = s.Filter.Type.Title()
	}
	header := m.theme.Subtitle.Render(fmt.Sprintf("Transactions (%d) · Filter: %s", len(s.Rows), filter))

	rows := s.Rows
	if limit := m.height - 14; limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderRows(rows, "No transactions found"))
}

func (m Model) renderRows(rows []model.Transaction, empty string) string {
	if len(rows) == 0 {
		return m.theme.Muted.Render(empty)
	}

	lines := make([]string, 0, len(rows))
	for _, t := range rows {
		style := m.theme.Expense
		if t.IsIncome() {
			style = m.theme.Income
		}
		lines = append(lines, fmt.Sprintf("%-10s  %-28s  %s %-14s  %s",
			t.Date.Display(),
			truncate(t.Description, 28),
			themes.CategoryIcon(t.Category),
			truncate(t.Category, 14),
			style.Render(t.Sign()+money.Format(t.Amount)),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBudgets() string {
	header := m.theme.Subtitle.Render("Budget Progress")
	if len(m.snapshot.Budgets) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			m.theme.Muted.Render(`No budgets set. Try "set budget 5000 for food".`))
	}

	lines := make([]string, 0, len(m.snapshot.Budgets))
	for _, row := range m.snapshot.Budgets {
		bar := progress.New(
			progress.WithoutPercentage(),
			progress.WithWidth(30),
			progress.WithSolidFill(string(m.theme.ForStatusColor(row.Status))),
		)
		lines = append(lines, fmt.Sprintf("%s %-14s %s  %s / %s  %s",
			themes.CategoryIcon(row.Budget.Category),
			truncate(row.Budget.Category, 14),
			bar.ViewAs(math.Min(row.Percentage/100, 1)),
			money.Format(row.Budget.Spent),
			money.Format(row.Budget.Limit),
			m.theme.ForStatus(row.Status).Render(fmt.Sprintf("%.0f%%", row.Percentage)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
}

func (m Model) renderAnalytics() string {
	s := m.snapshot

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Expenses by Category"),
		m.renderExpenseChart(s.ExpenseChart),
		"",
		m.theme.Subtitle.Render("Income vs Expenses"),
		m.renderTrend(s.Trend),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Financial Health"),
		m.renderHealth(s),
		"",
		m.theme.Subtitle.Render("Spending Insights"),
		m.renderInsights(s.Insights),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		m.theme.Muted.Render("  │  "),
		right,
	)
}

func (m Model) renderExpenseChart(totals []analysis.CategoryTotal) string {
	if len(totals) == 0 {
		return m.theme.Muted.Render("No expenses yet")
	}

	largest := decimal.Zero
	for _, t := range totals {
		if t.Amount.GreaterThan(largest) {
			largest = t.Amount
		}
	}

	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		ratio := 0.0
		if largest.IsPositive() {
			ratio = t.Amount.Div(largest).InexactFloat64()
		}
		lines = append(lines, fmt.Sprintf("%-14s %s %s",
			truncate(t.Category, 14),
			m.theme.Expense.Render(strings.Repeat("█", int(math.Round(ratio*20)))),
			money.Format(t.Amount),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTrend(trend []analysis.MonthTotal) string {
	lines := make([]string, 0, len(trend))
	for _, mt := range trend {
		lines = append(lines, fmt.Sprintf("%-7s %s  %s",
			mt.Label,
			m.theme.Income.Render(fmt.Sprintf("%12s", "+"+money.Format(mt.Income))),
			m.theme.Expense.Render(fmt.Sprintf("%12s", "-"+money.Format(mt.Expense))),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHealth(s analysis.Snapshot) string {
	style := m.theme.StatusSuccess
	switch {
	case s.HealthScore < 40:
		style = m.theme.StatusError
	case s.HealthScore <= 80:
		style = m.theme.StatusWarning
	}

	lines := []string{
		style.Render(fmt.Sprintf("%d/100", s.HealthScore)),
		m.bar.ViewAs(float64(s.HealthScore) / 100),
		m.theme.Muted.Render(fmt.Sprintf("Savings rate %.1f%%", s.SavingsRate)),
	}
	for _, tip := range s.HealthTips {
		lines = append(lines, "• "+tip)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderInsights(ins analysis.Insights) string {
	return strings.Join([]string{
		fmt.Sprintf("Total transactions: %d", ins.TotalTransactions),
		fmt.Sprintf("Average amount: %s", money.Format(ins.AverageAmount)),
		fmt.Sprintf("Largest expense: %s", money.Format(ins.LargestExpense)),
		fmt.Sprintf("Most frequent category: %s", ins.MostFrequentCategory),
	}, "\n")
}

func (m Model) renderVoicePanel() string {
	var lines []string
	switch {
	case m.listening:
		lines = append(lines, m.theme.StatusError.Render("● Listening...")+"  "+m.theme.Muted.Render("Enter to run · Esc to stop"))
		lines = append(lines, m.prompt.View())
	case m.busy:
		lines = append(lines, m.theme.StatusInfo.Render("Processing..."))
	default:
		lines = append(lines, m.theme.Muted.Render("Press Space to speak a command"))
	}

	if m.lastUtterance != "" {
		lines = append(lines, m.theme.Muted.Render("You said: ")+m.theme.Normal.Render(m.lastUtterance))
	}
	if m.lastReply != "" {
		voice := "🔊 "
		if !m.snapshot.Settings.VoiceResponseEnabled {
			voice = "🔇 "
		}
		lines = append(lines, voice+m.theme.Bold.Render(m.lastReply))
	}

	return "\n" + m.theme.BorderedBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderToasts() string {
	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		switch t.level {
		case service.ToastError:
			lines = append(lines, m.theme.StatusError.Render("✗ "+t.message))
		case service.ToastInfo:
			lines = append(lines, m.theme.StatusInfo.Render("ℹ "+t.message))
		default:
			lines = append(lines, m.theme.StatusSuccess.Render("✓ "+t.message))
		}
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the voice command examples and key bindings.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Voice Commands")

	examples := make([]string, 0, len(m.examples))
	for _, ex := range m.examples {
		examples = append(examples, "  "+m.theme.Normal.Render(ex))
	}

	keys := m.help
	keys.ShowAll = true

	footer := m.theme.Muted.Render("Press ? or Esc to close help")

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(examples, "\n"),
		"",
		keys.View(m.keymap),
		"",
		footer,
	))
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := "Browse"
	if m.listening {
		left = "Listening"
	}

	theme := "☀ light"
	if m.theme.Name == model.ThemeDark {
		theme = "☾ dark"
	}
	voice := "voice on"
	if !m.snapshot.Settings.VoiceResponseEnabled {
		voice = "voice off"
	}

	status := fmt.Sprintf("%s  %s  %s · %s",
		m.theme.StatusInfo.Render(left),
		m.help.View(m.keymap),
		theme,
		voice,
	)

	width := m.width
	if width <= 0 {
		width = 80
	}
	return m.theme.StatusBar.
		Width(width).
		MaxWidth(width).
		Render(status)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
