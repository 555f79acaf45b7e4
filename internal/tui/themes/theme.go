// Package themes holds the light and dark color schemes of the dashboard.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ledgervox/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Selected      lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Card          lipgloss.Style
	RoundedBox    lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusBar     lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Primary       lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
	Name          model.Theme
}

type palette struct {
	primary    lipgloss.Color
	foreground lipgloss.Color
	subtle     lipgloss.Color
	muted      lipgloss.Color
	surface    lipgloss.Color
	border     lipgloss.Color
	success    lipgloss.Color
	warning    lipgloss.Color
	danger     lipgloss.Color
	info       lipgloss.Color
}

func build(name model.Theme, p palette) Theme {
	return Theme{
		Name:    name,
		Primary: p.primary,
		Border:  p.border,
		Success: p.success,
		Warning: p.warning,
		Error:   p.danger,
		Info:    p.info,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.subtle).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.surface).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.surface).
			Background(p.primary).
			Padding(0, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.foreground).
			Background(p.border),

		Income: lipgloss.NewStyle().
			Foreground(p.success),
		Expense: lipgloss.NewStyle().
			Foreground(p.danger),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.info).
			Bold(true),
	}
}

// Light is the light theme.
var Light = build(model.ThemeLight, palette{
	primary:    lipgloss.Color("#4f46e5"),
	foreground: lipgloss.Color("#1f2937"),
	subtle:     lipgloss.Color("#374151"),
	muted:      lipgloss.Color("#6b7280"),
	surface:    lipgloss.Color("#ffffff"),
	border:     lipgloss.Color("#d1d5db"),
	success:    lipgloss.Color("#059669"),
	warning:    lipgloss.Color("#d97706"),
	danger:     lipgloss.Color("#dc2626"),
	info:       lipgloss.Color("#2563eb"),
})

// Dark is the dark theme.
var Dark = build(model.ThemeDark, palette{
	primary:    lipgloss.Color("#a78bfa"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	muted:      lipgloss.Color("#737373"),
	surface:    lipgloss.Color("#1a1a1a"),
	border:     lipgloss.Color("#404040"),
	success:    lipgloss.Color("#10b981"),
	warning:    lipgloss.Color("#f59e0b"),
	danger:     lipgloss.Color("#ef4444"),
	info:       lipgloss.Color("#3b82f6"),
})

// For returns the theme for a stored theme setting.
func For(name model.Theme) Theme {
	if name == model.ThemeDark {
		return Dark
	}
	return Light
}

// ForStatus returns the style of a budget progress class.
func (t Theme) ForStatus(status model.BudgetStatus) lipgloss.Style {
	switch status {
	case model.BudgetDanger:
		return t.StatusError
	case model.BudgetWarning:
		return t.StatusWarning
	}
	return t.StatusSuccess
}

// ForStatusColor returns the bar color of a budget progress class.
func (t Theme) ForStatusColor(status model.BudgetStatus) lipgloss.Color {
	switch status {
	case model.BudgetDanger:
		return t.Error
	case model.BudgetWarning:
		return t.Warning
	}
	return t.Success
}

// CategoryIcons maps categories to emoji icons.
var CategoryIcons = map[string]string{
	"Salary":        "💼",
	"Freelance":     "💻",
	"Investment":    "📈",
	"Business":      "🏢",
	"Food":          "🍽️",
	"Transport":     "🚗",
	"Entertainment": "🎬",
	"Shopping":      "🛍️",
	"Bills":         "💡",
	"Healthcare":    "💊",
	"Education":     "📚",
	"Other":         "📦",
}

// CategoryIcon returns an icon for a category.
func CategoryIcon(category string) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
