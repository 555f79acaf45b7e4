package analysis

import (
	"strings"
	"testing"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalOf(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestCLIFormatter_FormatReport(t *testing.T) {
	snap := BuildSnapshot(SnapshotInput{
		Now:          september,
		Settings:     model.DefaultSettings(),
		Transactions: model.SampleTransactions(),
		Budgets:      model.SampleBudgets(),
	})

	out := NewCLIFormatter().FormatReport(snap)

	for _, want := range []string{
		"Monthly Report",
		"September 2025",
		"₹55,000",
		"₹35,000",
		"Financial Health Score: 100/100",
		"Excellent financial health!",
		"Food",
		"Most frequent category: Salary",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCLIFormatter_FormatTransactions(t *testing.T) {
	f := NewCLIFormatter()

	assert.Contains(t, f.FormatTransactions(nil), "No transactions found")

	out := f.FormatTransactions(DisplayOrder(model.SampleTransactions()))
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[2], "Movies and gaming")
	assert.Contains(t, lines[2], "-₹12,000")
	assert.Contains(t, out, "+₹50,000")
}

func TestCLIFormatter_FormatBudgetsEmpty(t *testing.T) {
	assert.Contains(t, NewCLIFormatter().FormatBudgets(nil), "No budgets set")
}

func TestStyles_RenderProgressBar(t *testing.T) {
	s := NewStyles()

	assert.Equal(t, "█████░░░░░", s.RenderProgressBar(0.5, 10))
	assert.Equal(t, "██████████", s.RenderProgressBar(1.7, 10))
	assert.Equal(t, "░░░░░", s.RenderProgressBar(-1, 5))
	assert.Equal(t, 30, len([]rune(s.RenderProgressBar(0, 0))))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
