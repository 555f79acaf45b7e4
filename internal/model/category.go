package model

// OtherCategory is the fallback category present in both lists.
const OtherCategory = "Other"

// NoCategory is returned by statistics when there is nothing to count.
const NoCategory = "None"

// CategorySet holds the two fixed category lists in declared order.
// Matching is case-insensitive but names are kept in canonical case.
type CategorySet struct {
	Income  []string
	Expense []string
}

// DefaultCategories returns the built-in category lists.
func DefaultCategories() CategorySet {
	return CategorySet{
		Income:  []string{"Salary", "Freelance", "Investment", "Business", "Other"},
		Expense: []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Healthcare", "Education", "Other"},
	}
}

// For returns the category list for a transaction type.
func (c CategorySet) For(t TransactionType) []string {
	switch t {
	case TypeIncome:
		return c.Income
	case TypeExpense:
		return c.Expense
	}
	return nil
}

// Contains reports whether name is a canonical category for the type.
func (c CategorySet) Contains(t TransactionType, name string) bool {
	for _, cat := range c.For(t) {
		if cat == name {
			return true
		}
	}
	return false
}

// All returns the union of both lists without duplicates, income first.
func (c CategorySet) All() []string {
	seen := make(map[string]struct{}, len(c.Income)+len(c.Expense))
	all := make([]string, 0, len(c.Income)+len(c.Expense))
	for _, list := range [][]string{c.Income, c.Expense} {
		for _, cat := range list {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			all = append(all, cat)
		}
	}
	return all
}
