// Package money parses spoken and typed amounts and formats rupee values.
package money

import (
	"strconv"
	"strings"

	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidAmount is returned for amounts that are not non-negative decimals.
var ErrInvalidAmount = common.ErrInvalidAmount

// Symbol is the currency sign prepended to formatted amounts.
const Symbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Parse parses a non-negative decimal with optional thousands separators,
// e.g. "1,500" or "20000.50".
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParsePositive parses an amount that must be greater than zero.
func ParsePositive(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseSigned parses an amount that may carry a leading minus sign, such as
// an overdrawn balance.
func ParseSigned(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		d, err := Parse(rest)
		return d.Neg(), err
	}
	return Parse(s)
}

// Format renders an amount in rupees with en-IN digit grouping and at most
// two fraction digits: ₹1,500, ₹1,50,000.5 or -₹7,000. Digits come from
// the decimal itself, so large amounts keep their paise.
func Format(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	out := sign + Symbol + groupWhole(whole)
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	return out
}

// groupWhole groups the integer digits of an amount. Values that fit an
// int64 go through the en-IN number printer; larger ones are grouped the
// same way by hand: the last three digits, then pairs.
func groupWhole(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
