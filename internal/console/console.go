// Package console renders executor output on a plain terminal for the
// listen and say commands.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
)

// Presenter writes toasts, help and the navigated section to a writer.
// Refresh only records the snapshot; a section is printed when the user
// navigates to it.
type Presenter struct {
	writer    io.Writer
	formatter *analysis.CLIFormatter
	snapshot  analysis.Snapshot
	tab       model.Tab
	mu        sync.Mutex
}

var _ service.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{
		writer:    w,
		formatter: analysis.NewCLIFormatter(),
		tab:       model.TabDashboard,
	}
}

// Refresh implements service.Presenter.
func (p *Presenter) Refresh(snapshot analysis.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = snapshot
}

// Navigate implements service.Presenter.
func (p *Presenter) Navigate(tab model.Tab) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tab = tab
	p.println(p.render(tab))
}

// Toast implements service.Presenter.
func (p *Presenter) Toast(message string, level service.ToastLevel) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch level {
	case service.ToastSuccess:
		p.println(cli.FormatSuccess(message))
	case service.ToastError:
		p.println(cli.FormatError(message))
	default:
		p.println(cli.FormatInfo(message))
	}
}

// ShowHelp implements service.Presenter.
func (p *Presenter) ShowHelp(examples []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	for _, ex := range examples {
		b.WriteString(cli.SubtleStyle.Render("• ") + ex + "\n")
	}
	p.println(cli.RenderBox(cli.MicIcon+" Try saying", strings.TrimRight(b.String(), "\n")))
}

// Tab returns the section last navigated to.
func (p *Presenter) Tab() model.Tab {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tab
}

func (p *Presenter) render(tab model.Tab) string {
	s := p.snapshot
	switch tab {
	case model.TabTransactions:
		return p.formatter.FormatTransactions(s.Rows)
	case model.TabBudget:
		return p.formatter.FormatBudgets(s.Budgets)
	case model.TabAnalytics:
		return p.formatter.FormatReport(s)
	}
	return p.formatter.FormatSummary(s)
}

func (p *Presenter) println(s string) {
	if _, err := fmt.Fprintln(p.writer, s); err != nil {
		slog.Warn("Failed to write console output", "error", err)
	}
}
