package analysis

import (
	"sort"
	"strings"

	"github.com/Veraticus/ledgervox/internal/model"
)

// RecentCount is the number of rows in the dashboard's recent list.
const RecentCount = 5

// Filter narrows the transaction table. Zero-valued fields match everything.
type Filter struct {
	Type     model.TransactionType
	Category string
	Search   string
}

// Matches reports whether t passes every set criterion. Search is a
// case-insensitive substring match against description or category.
func (f Filter) Matches(t model.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Category), needle) {
			return false
		}
	}
	return true
}

// Apply returns the matching transactions in display order.
func (f Filter) Apply(transactions []model.Transaction) []model.Transaction {
	matched := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	SortForDisplay(matched)
	return matched
}

// SortForDisplay orders transactions newest first. Equal dates keep their
// relative order.
func SortForDisplay(transactions []model.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

// DisplayOrder returns a sorted copy, leaving the input untouched.
func DisplayOrder(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	SortForDisplay(sorted)
	return sorted
}

// Recent returns the newest transactions for the dashboard.
func Recent(transactions []model.Transaction) []model.Transaction {
	sorted := DisplayOrder(transactions)
	if len(sorted) > RecentCount {
		sorted = sorted[:RecentCount]
	}
	return sorted
}
