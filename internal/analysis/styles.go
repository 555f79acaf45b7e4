package analysis

import (
	"strings"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	// Base styles from CLI package
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	// Report-specific styles
	Box        lipgloss.Style
	Score      lipgloss.Style
	Income     lipgloss.Style
	Expense    lipgloss.Style
	InsightBox lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Info:     cli.InfoStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	s.Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.PrimaryColor)

	s.Income = lipgloss.NewStyle().
		Foreground(cli.SuccessColor)

	s.Expense = lipgloss.NewStyle().
		Foreground(cli.ErrorColor)

	s.InsightBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(cli.InfoColor).
		Padding(0, 1).
		MarginTop(1)

	return s
}

// WithWidth returns a new Styles instance adjusted for the given terminal width.
func (s *Styles) WithWidth(width int) *Styles {
	newStyles := *s
	if width > 0 && width < 100 {
		newStyles.Box = s.Box.Width(width - 4)
		newStyles.InsightBox = s.InsightBox.Width(width - 4)
	}
	return &newStyles
}

// ForStatus returns the style for a budget status.
func (s *Styles) ForStatus(status model.BudgetStatus) lipgloss.Style {
	switch status {
	case model.BudgetDanger:
		return s.Error
	case model.BudgetWarning:
		return s.Warning
	case model.BudgetSafe:
		return s.Success
	default:
		return s.Normal
	}
}

// ForType returns the style for a transaction type.
func (s *Styles) ForType(t model.TransactionType) lipgloss.Style {
	if t == model.TypeIncome {
		return s.Income
	}
	return s.Expense
}

// ForScore returns the style for a health score on a 0-100 scale.
func (s *Styles) ForScore(score int) lipgloss.Style {
	switch {
	case score > 80:
		return s.Success
	case score >= 50:
		return s.Warning
	default:
		return s.Error
	}
}

// RenderProgressBar creates a bar for progress in [0, 1]. Values outside
// the range are clamped.
func (s *Styles) RenderProgressBar(progress float64, width int) string {
	if width <= 0 {
		width = 30
	}

	filled := int(float64(width) * progress)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	// Raw characters keep the width exact
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderBox renders content in a styled box with optional title.
func (s *Styles) RenderBox(content string, title string, style lipgloss.Style) string {
	if title != "" {
		titleStyled := s.Info.Bold(true).Render(" " + title + " ")
		return style.Render(titleStyled + "\n" + content)
	}
	return style.Render(content)
}
