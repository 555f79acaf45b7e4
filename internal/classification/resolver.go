// Package classification maps free text onto canonical category names.
package classification

import (
	"strings"

	"github.com/Veraticus/ledgervox/internal/model"
)

// Resolver maps a spoken or typed token to a canonical category name.
type Resolver struct {
	aliases    map[string]string
	categories model.CategorySet
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAliases merges extra aliases over the defaults. Keys are matched
// case-insensitively.
func WithAliases(aliases map[string]string) Option {
	return func(r *Resolver) {
		for k, v := range aliases {
			r.aliases[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
}

// NewResolver creates a resolver over the given category lists.
func NewResolver(categories model.CategorySet, opts ...Option) *Resolver {
	r := &Resolver{
		categories: categories,
		aliases:    DefaultAliases(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Categories returns the category lists the resolver matches against.
func (r *Resolver) Categories() model.CategorySet {
	return r.categories
}

// Resolve returns the canonical category for input within the list for t.
// Lookup order, first hit wins: exact match, substring match in either
// direction in declared list order, then the alias table. The alias table
// is shared by both types, so an alias may name a category from the other
// list.
func (r *Resolver) Resolve(input string, t model.TransactionType) (string, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(input)
	list := r.categories.For(t)

	for _, cat := range list {
		if strings.ToLower(cat) == normalized {
			return cat, true
		}
	}

	for _, cat := range list {
		lower := strings.ToLower(cat)
		if strings.Contains(lower, normalized) || strings.Contains(normalized, lower) {
			return cat, true
		}
	}

	if alias, ok := r.aliases[normalized]; ok {
		return alias, true
	}

	return "", false
}

// ResolveOrOther resolves input and falls back to model.OtherCategory.
func (r *Resolver) ResolveOrOther(input string, t model.TransactionType) string {
	if cat, ok := r.Resolve(input, t); ok {
		return cat
	}
	return model.OtherCategory
}
