package classification

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/ledgervox/internal/model"
)

// PayeePattern maps a regular expression over a payee name to a category.
type PayeePattern struct {
	Name     string
	Category string
	Type     model.TransactionType
	Regex    string
	Priority int // Higher priority patterns are checked first
}

type compiledPayeePattern struct {
	re *regexp.Regexp
	PayeePattern
}

// PayeeDetector suggests categories for imported bank payees.
type PayeeDetector struct {
	patterns []compiledPayeePattern
}

// NewPayeeDetector compiles the given patterns case-insensitively.
func NewPayeeDetector(patterns []PayeePattern) (*PayeeDetector, error) {
	compiled := make([]compiledPayeePattern, 0, len(patterns))

	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		re, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}

		compiled = append(compiled, compiledPayeePattern{PayeePattern: p, re: re})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &PayeeDetector{patterns: compiled}, nil
}

// Detect returns the category of the first pattern matching payee for the
// given transaction type.
func (d *PayeeDetector) Detect(payee string, t model.TransactionType) (string, bool) {
	for _, p := range d.patterns {
		if p.Type != t {
			continue
		}
		if p.re.MatchString(payee) {
			return p.Category, true
		}
	}
	return "", false
}

// DefaultPayeePatterns returns patterns for common statement payees.
func DefaultPayeePatterns() []PayeePattern {
	return []PayeePattern{
		{Name: "Payroll", Type: model.TypeIncome, Category: "Salary", Regex: `\b(SALARY|PAYROLL|WAGES|SAL\s*CR)\b`, Priority: 100},
		{Name: "Dividends", Type: model.TypeIncome, Category: "Investment", Regex: `\b(DIVIDEND|DIV|INTEREST|INT\s*CR|MUTUAL\s*FUND)\b`, Priority: 90},
		{Name: "Client payment", Type: model.TypeIncome, Category: "Freelance", Regex: `\b(INVOICE|CLIENT|UPWORK|FIVERR)\b`, Priority: 80},
		{Name: "Groceries", Type: model.TypeExpense, Category: "Food", Regex: `\b(SWIGGY|ZOMATO|RESTAURANT|CAFE|GROCER\w*|BIGBASKET|BLINKIT)\b`, Priority: 90},
		{Name: "Travel", Type: model.TypeExpense, Category: "Transport", Regex: `\b(UBER|OLA|FUEL|PETROL|METRO|IRCTC|PARKING)\b`, Priority: 90},
		{Name: "Streaming", Type: model.TypeExpense, Category: "Entertainment", Regex: `\b(NETFLIX|SPOTIFY|HOTSTAR|PVR|INOX|BOOKMYSHOW)\b`, Priority: 85},
		{Name: "Retail", Type: model.TypeExpense, Category: "Shopping", Regex: `\b(AMAZON|FLIPKART|MYNTRA|AJIO)\b`, Priority: 80},
		{Name: "Utilities", Type: model.TypeExpense, Category: "Bills", Regex: `\b(ELECTRICITY|BESCOM|AIRTEL|JIO|BROADBAND|GAS|WATER\s*BILL)\b`, Priority: 80},
		{Name: "Pharmacy", Type: model.TypeExpense, Category: "Healthcare", Regex: `\b(PHARMACY|APOLLO|HOSPITAL|CLINIC|MEDPLUS)\b`, Priority: 80},
		{Name: "Tuition", Type: model.TypeExpense, Category: "Education", Regex: `\b(SCHOOL|COLLEGE|TUITION|UDEMY|COURSERA)\b`, Priority: 80},
	}
}
