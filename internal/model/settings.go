package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Theme is the display color scheme.
type Theme string

const (
	// ThemeLight is the light color scheme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color scheme.
	ThemeDark Theme = "dark"
)

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Settings holds the scalar preferences. Each field is persisted and
// defaulted independently.
type Settings struct {
	Balance              decimal.Decimal
	Theme                Theme
	VoiceResponseEnabled bool
}

// DefaultBalance is the opening balance used when none is stored.
var DefaultBalance = decimal.NewFromInt(32000)

// DefaultSettings returns the settings used for keys absent from storage.
func DefaultSettings() Settings {
	return Settings{
		Balance:              DefaultBalance,
		Theme:                ThemeLight,
		VoiceResponseEnabled: true,
	}
}

// Tab is a dashboard section reachable by navigation.
type Tab string

const (
	// TabDashboard is the overview tab.
	TabDashboard Tab = "dashboard"
	// TabTransactions is the transaction table.
	TabTransactions Tab = "transactions"
	// TabBudget is the budget list.
	TabBudget Tab = "budget"
	// TabAnalytics holds charts, insights and the health score.
	TabAnalytics Tab = "analytics"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabDashboard, TabTransactions, TabBudget, TabAnalytics}

// Title returns the capitalized tab name.
func (t Tab) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}
