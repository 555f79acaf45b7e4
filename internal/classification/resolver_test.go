package classification

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(model.DefaultCategories())

	tests := []struct {
		name   string
		input  string
		typ    model.TransactionType
		want   string
		wantOK bool
	}{
		{name: "empty input", input: "", typ: model.TypeExpense},
		{name: "exact lower case", input: "food", typ: model.TypeExpense, want: "Food", wantOK: true},
		{name: "exact mixed case", input: "TrAnSpOrT", typ: model.TypeExpense, want: "Transport", wantOK: true},
		{name: "input inside category", input: "entertain", typ: model.TypeExpense, want: "Entertainment", wantOK: true},
		{name: "category inside input", input: "foodstuff", typ: model.TypeExpense, want: "Food", wantOK: true},
		{name: "substring takes declared order", input: "o", typ: model.TypeExpense, want: "Food", wantOK: true},
		{name: "substring wins over alias", input: "car", typ: model.TypeExpense, want: "Healthcare", wantOK: true},
		{name: "alias", input: "car", typ: model.TypeIncome, want: "Transport", wantOK: true},
		{name: "alias medical", input: "medical", typ: model.TypeExpense, want: "Healthcare", wantOK: true},
		{name: "income alias", input: "job", typ: model.TypeIncome, want: "Salary", wantOK: true},
		{name: "alias crosses lists", input: "work", typ: model.TypeExpense, want: "Salary", wantOK: true},
		{name: "expense alias during income lookup", input: "movie", typ: model.TypeIncome, want: "Entertainment", wantOK: true},
		{name: "income substring", input: "freelancer", typ: model.TypeIncome, want: "Freelance", wantOK: true},
		{name: "unknown", input: "xyz", typ: model.TypeExpense},
		{name: "unknown type", input: "food", typ: model.TransactionType("transfer"), want: "Food", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.input, tt.typ)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_CanonicalNamesAreIdempotent(t *testing.T) {
	cats := model.DefaultCategories()
	r := NewResolver(cats)

	for _, typ := range []model.TransactionType{model.TypeIncome, model.TypeExpense} {
		for _, name := range cats.For(typ) {
			got, ok := r.Resolve(name, typ)
			require.True(t, ok, "%s/%s", typ, name)
			assert.Equal(t, name, got)
		}
	}
}

func TestResolver_ResolveOrOther(t *testing.T) {
	r := NewResolver(model.DefaultCategories())
	assert.Equal(t, "Food", r.ResolveOrOther("food", model.TypeExpense))
	assert.Equal(t, model.OtherCategory, r.ResolveOrOther("groceries", model.TypeExpense))
	assert.Equal(t, model.OtherCategory, r.ResolveOrOther("", model.TypeIncome))
}

func TestResolver_WithAliases(t *testing.T) {
	r := NewResolver(model.DefaultCategories(), WithAliases(map[string]string{
		" Groceries ": "Food",
		"job":         "Business",
	}))

	got, ok := r.Resolve("groceries", model.TypeExpense)
	require.True(t, ok)
	assert.Equal(t, "Food", got)

	got, ok = r.Resolve("job", model.TypeExpense)
	require.True(t, ok)
	assert.Equal(t, "Business", got)
}

func TestLoadAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases:\n  cab: Transport\n  rent: Bills\n"), 0o600))

	aliases, err := LoadAliases(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"cab": "Transport", "rent": "Bills"}, aliases)

	_, err = LoadAliases(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("aliases: [unclosed"), 0o600))
	_, err = LoadAliases(bad)
	assert.Error(t, err)
}

func TestPayeeDetector(t *testing.T) {
	d, err := NewPayeeDetector(DefaultPayeePatterns())
	require.NoError(t, err)

	tests := []struct {
		payee  string
		typ    model.TransactionType
		want   string
		wantOK bool
	}{
		{payee: "UBER INDIA TRIP", typ: model.TypeExpense, want: "Transport", wantOK: true},
		{payee: "Swiggy order 123", typ: model.TypeExpense, want: "Food", wantOK: true},
		{payee: "ACME PAYROLL", typ: model.TypeIncome, want: "Salary", wantOK: true},
		{payee: "ACME PAYROLL", typ: model.TypeExpense},
		{payee: "UNKNOWN MERCHANT", typ: model.TypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.payee, func(t *testing.T) {
			got, ok := d.Detect(tt.payee, tt.typ)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPayeeDetector_InvalidRegex(t *testing.T) {
	_, err := NewPayeeDetector([]PayeePattern{{Name: "bad", Regex: "[unclosed", Type: model.TypeExpense}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile pattern")
}

func TestPayeeDetector_Priority(t *testing.T) {
	d, err := NewPayeeDetector([]PayeePattern{
		{Name: "low", Type: model.TypeExpense, Category: "Shopping", Regex: `AMAZON`, Priority: 1},
		{Name: "high", Type: model.TypeExpense, Category: "Entertainment", Regex: `AMAZON PRIME`, Priority: 10},
	})
	require.NoError(t, err)

	got, ok := d.Detect("amazon prime video", model.TypeExpense)
	require.True(t, ok)
	assert.Equal(t, "Entertainment", got)
}
