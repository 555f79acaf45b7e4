package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain integer", input: "1500", want: "1500"},
		{name: "thousands separators", input: "1,500", want: "1500"},
		{name: "lakh separators", input: "1,50,000", want: "150000"},
		{name: "fraction", input: "20000.50", want: "20000.5"},
		{name: "zero", input: "0", want: "0"},
		{name: "surrounding space", input: "  42 ", want: "42"},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "explicit plus", input: "+5", wantErr: true},
		{name: "words", input: "five", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParsePositive(t *testing.T) {
	_, err := ParsePositive("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	got, err := ParsePositive("10")
	require.NoError(t, err)
	assert.Equal(t, "10", got.String())
}

func TestParseSigned(t *testing.T) {
	got, err := ParseSigned("-7,000")
	require.NoError(t, err)
	assert.Equal(t, "-7000", got.String())

	got, err = ParseSigned("32000")
	require.NoError(t, err)
	assert.Equal(t, "32000", got.String())

	_, err = ParseSigned("--5")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(0), "₹0"},
		{decimal.NewFromInt(500), "₹500"},
		{decimal.NewFromInt(1500), "₹1,500"},
		{decimal.NewFromInt(32000), "₹32,000"},
		{decimal.NewFromInt(-7000), "-₹7,000"},
		{decimal.RequireFromString("99.5"), "₹99.5"},
		{decimal.RequireFromString("150000.756"), "₹1,50,000.76"},
		{decimal.RequireFromString("-0.001"), "₹0"},
		{decimal.RequireFromString("12345678901234567.89"), "₹12,34,56,78,90,12,34,567.89"},
		{decimal.RequireFromString("123456789012345678901.05"), "₹12,34,56,78,90,12,34,56,78,901.05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount))
		})
	}
}
