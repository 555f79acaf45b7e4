package intent

import (
	"regexp"
	"strings"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
)

// amountPattern accepts digits with optional thousands separators and an
// optional fraction: 1500, 1,500, 1,50,000.75. The trailing word boundary
// keeps a following token from borrowing the amount's last digits.
const amountPattern = `(\d+(?:,\d+)*(?:\.\d+)?)\b`

var (
	incomeRe   = regexp.MustCompile(`add income ` + amountPattern + `\s*(?:from|for)?\s*(\w+)?\s*(?:for)?\s*(.*)`)
	expenseRe  = regexp.MustCompile(`add expense ` + amountPattern + `\s*(?:for)?\s*(\w+)?\s*(.*)`)
	budgetRe   = regexp.MustCompile(`set budget ` + amountPattern + `\s*(?:for)?\s*(\w+)`)
	spendingRe = regexp.MustCompile(`how much.*\bspent\b.*?(\w+)\s*$|spending.*?(\w+)\s*$`)
)

// spendingPeriods are trailing time phrases that never name a category.
var spendingPeriods = []string{"this month", "so far", "till now", "until now", "this week", "today", "in total"}

// Rule is one entry in the ordered rule list. Match returns false to let
// the next rule try.
type Rule struct {
	Match func(utterance string) (Intent, bool)
	Name  string
}

// Matcher classifies utterances by trying rules in order. The first rule
// that matches wins.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher with the default rule list.
func NewMatcher() *Matcher {
	return &Matcher{rules: DefaultRules()}
}

// Normalize lower-cases and trims a transcript.
func Normalize(transcript string) string {
	return strings.ToLower(strings.TrimSpace(transcript))
}

// Match classifies a normalized utterance. It never fails: utterances no
// rule accepts become Unrecognized.
func (m *Matcher) Match(utterance string) Intent {
	for _, rule := range m.rules {
		if in, ok := rule.Match(utterance); ok {
			return in
		}
	}
	return Unrecognized{Utterance: utterance}
}

// DefaultRules returns the voice command rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		phrases("navigate dashboard", Navigate{Tab: model.TabDashboard}, "go to dashboard", "show dashboard"),
		phrases("navigate transactions", Navigate{Tab: model.TabTransactions}, "show transactions", "go to transactions"),
		phrases("navigate budget", Navigate{Tab: model.TabBudget}, "show budget", "open budget", "go to budget"),
		phrases("navigate analytics", Navigate{Tab: model.TabAnalytics}, "show analytics", "open analytics", "go to analytics"),
		phrases("balance", QueryBalance{}, "balance"),
		phrases("expenses", QueryExpenses{}, "what are my expenses", "show expenses"),
		{Name: "add income", Match: addTransaction(incomeRe, model.TypeIncome)},
		{Name: "add expense", Match: addTransaction(expenseRe, model.TypeExpense)},
		{Name: "set budget", Match: setBudget},
		{Name: "spending", Match: spending},
		phrases("delete last", DeleteLast{}, "delete last transaction", "remove last transaction"),
		phrases("advice", Advice{}, "financial advice", "give me advice"),
		phrases("help", Help{}, "help", "voice commands"),
		phrases("export", Export{}, "export", "download data"),
		phrases("show budgets", ShowBudgets{}, "show budgets", "show my budgets"),
		phrases("monthly report", MonthlyReport{}, "monthly report", "show report"),
	}
}

// phrases builds a rule that fires when the utterance contains any of the
// given phrases.
func phrases(name string, result Intent, accepted ...string) Rule {
	return Rule{
		Name: name,
		Match: func(utterance string) (Intent, bool) {
			for _, p := range accepted {
				if strings.Contains(utterance, p) {
					return result, true
				}
			}
			return nil, false
		},
	}
}

func addTransaction(re *regexp.Regexp, t model.TransactionType) func(string) (Intent, bool) {
	return func(utterance string) (Intent, bool) {
		m := re.FindStringSubmatch(utterance)
		if m == nil {
			return nil, false
		}
		amount, err := money.Parse(m[1])
		if err != nil {
			return nil, false
		}
		return AddTransaction{
			Type:        t,
			Amount:      amount,
			Category:    m[2],
			Description: strings.TrimSpace(m[3]),
		}, true
	}
}

func setBudget(utterance string) (Intent, bool) {
	m := budgetRe.FindStringSubmatch(utterance)
	if m == nil {
		return nil, false
	}
	amount, err := money.Parse(m[1])
	if err != nil {
		return nil, false
	}
	return SetBudget{Amount: amount, Category: m[2]}, true
}

func spending(utterance string) (Intent, bool) {
	if in, ok := spendingToken(trimPeriods(utterance)); ok {
		return in, true
	}
	return spendingToken(utterance)
}

func spendingToken(utterance string) (Intent, bool) {
	m := spendingRe.FindStringSubmatch(utterance)
	if m == nil {
		return nil, false
	}
	category := m[1]
	if category == "" {
		category = m[2]
	}
	if category == "" {
		return nil, false
	}
	return QuerySpending{Category: category}, true
}

// trimPeriods strips trailing spendingPeriods so "spent on food this month"
// asks about food.
func trimPeriods(utterance string) string {
	for {
		trimmed := false
		for _, p := range spendingPeriods {
			if rest, ok := strings.CutSuffix(utterance, " "+p); ok {
				utterance = strings.TrimSpace(rest)
				trimmed = true
			}
		}
		if !trimmed {
			return utterance
		}
	}
}
