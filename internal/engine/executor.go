// Package engine executes classified voice commands and form actions
// against the ledger and reports the outcome through the speaker and
// presenter.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/classification"
	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/intent"
	"github.com/Veraticus/ledgervox/internal/ledger"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
)

// Response describes the outcome of one command.
type Response struct {
	Intent  intent.Intent
	Reply   string
	Mutated bool
}

// Config holds optional collaborators. Nil fields get defaults.
type Config struct {
	Matcher  *intent.Matcher
	Resolver *classification.Resolver
	Exporter service.Exporter
}

// Executor runs commands one at a time against a ledger.
type Executor struct {
	ledger    *ledger.Ledger
	matcher   *intent.Matcher
	resolver  *classification.Resolver
	speaker   service.Speaker
	presenter service.Presenter
	exporter  service.Exporter
	filter    analysis.Filter
}

// New creates an executor with the default matcher and resolver.
func New(l *ledger.Ledger, speaker service.Speaker, presenter service.Presenter) *Executor {
	return NewWithConfig(l, speaker, presenter, Config{})
}

// NewWithConfig creates an executor with custom collaborators.
func NewWithConfig(l *ledger.Ledger, speaker service.Speaker, presenter service.Presenter, config Config) *Executor {
	if speaker == nil {
		speaker = nopSpeaker{}
	}
	if presenter == nil {
		presenter = nopPresenter{}
	}
	if config.Matcher == nil {
		config.Matcher = intent.NewMatcher()
	}
	if config.Resolver == nil {
		config.Resolver = classification.NewResolver(l.Categories())
	}

	return &Executor{
		ledger:    l,
		matcher:   config.Matcher,
		resolver:  config.Resolver,
		speaker:   speaker,
		presenter: presenter,
		exporter:  config.Exporter,
	}
}

// Ledger returns the ledger the executor mutates.
func (e *Executor) Ledger() *ledger.Ledger {
	return e.ledger
}

// Handle normalizes a final transcript, classifies it and executes the
// resulting intent.
func (e *Executor) Handle(ctx context.Context, transcript string) Response {
	utterance := intent.Normalize(transcript)
	in := e.matcher.Match(utterance)
	slog.Debug("Matched voice command", "utterance", utterance, "intent", in.Kind())
	return e.Execute(ctx, in)
}

// Execute runs one intent. Panics inside a handler are recovered and
// answered with the generic error reply.
func (e *Executor) Execute(ctx context.Context, in intent.Intent) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError(fmt.Errorf("%v", r), "Command failed", common.Fields{"intent": in.Kind()})
			resp = Response{Intent: in, Reply: ReplyError}
			e.speak(ctx, ReplyError)
		}
	}()

	resp = e.dispatch(ctx, in)
	resp.Intent = in
	if resp.Reply != "" {
		e.speak(ctx, resp.Reply)
	}
	return resp
}

func (e *Executor) dispatch(ctx context.Context, in intent.Intent) Response {
	switch in := in.(type) {
	case intent.Navigate:
		e.presenter.Navigate(in.Tab)
		return Response{Reply: replyNavigate(in.Tab)}

	case intent.QueryBalance:
		return Response{Reply: replyBalance(e.ledger.Settings().Balance)}

	case intent.QueryExpenses:
		return Response{Reply: replyExpenses(e.ledger.Aggregator().MonthlyExpenses())}

	case intent.AddTransaction:
		return e.addTransaction(ctx, in)

	case intent.SetBudget:
		return e.setBudget(ctx, in)

	case intent.QuerySpending:
		category, ok := e.resolver.Resolve(in.Category, model.TypeExpense)
		if !ok {
			return Response{Reply: replyNoSpendingData(in.Category)}
		}
		return Response{Reply: replySpent(category, e.ledger.Aggregator().CategorySpend(category))}

	case intent.DeleteLast:
		return e.deleteLast(ctx)

	case intent.Advice:
		return Response{Reply: ReplyAdvice}

	case intent.Help:
		e.presenter.ShowHelp(intent.Examples())
		return Response{Reply: ReplyHelp}

	case intent.Export:
		return e.export(ctx)

	case intent.ShowBudgets:
		e.presenter.Navigate(model.TabBudget)
		return Response{Reply: ReplyShowBudgets}

	case intent.MonthlyReport:
		agg := e.ledger.Aggregator()
		e.presenter.Toast(ToastReport, service.ToastSuccess)
		return Response{Reply: replyReport(agg.MonthlyIncome(), agg.MonthlyExpenses(), agg.NetSavings())}

	case intent.Unrecognized:
		return Response{Reply: ReplyUnrecognized}
	}

	return Response{Reply: ReplyUnrecognized}
}

func (e *Executor) addTransaction(ctx context.Context, in intent.AddTransaction) Response {
	if !in.Type.Valid() || in.Amount.IsNegative() {
		return Response{Reply: replyAddFailed(in.Type)}
	}

	category := e.resolver.ResolveOrOther(in.Category, in.Type)
	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = defaultDescription(in.Type, category)
	}

	txn := e.ledger.Append(ctx, model.Transaction{
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    category,
		Description: description,
		Date:        e.ledger.Today(),
	})
	e.Refresh(ctx)
	e.presenter.Toast(toastAdded(txn), service.ToastSuccess)

	return Response{Reply: replyAdded(txn), Mutated: true}
}

func (e *Executor) setBudget(ctx context.Context, in intent.SetBudget) Response {
	category, ok := e.resolver.Resolve(in.Category, model.TypeExpense)
	if !ok {
		category = strings.TrimSpace(in.Category)
	}
	if category == "" {
		return Response{Reply: ReplyMissingCategory}
	}

	b, _ := e.ledger.SetBudget(ctx, category, in.Amount)
	e.Refresh(ctx)
	e.presenter.Toast(toastBudgetSet(b), service.ToastSuccess)

	return Response{Reply: replyBudgetSet(b), Mutated: true}
}

func (e *Executor) deleteLast(ctx context.Context) Response {
	removed, ok := e.ledger.RemoveLast(ctx)
	if !ok {
		return Response{Reply: ReplyNothingToDelete}
	}
	e.Refresh(ctx)
	e.presenter.Toast(ToastDeletedLast, service.ToastSuccess)

	return Response{Reply: replyDeletedLast(removed), Mutated: true}
}

func (e *Executor) export(ctx context.Context) Response {
	if e.exporter == nil {
		common.LogError(fmt.Errorf("no exporter configured"), "Export failed", nil)
		e.presenter.Toast(ToastExportFailed, service.ToastError)
		return Response{}
	}

	location, err := e.exporter.Export(ctx, e.ledger.Transactions())
	if err != nil {
		common.LogError(err, "Export failed", nil)
		e.presenter.Toast(ToastExportFailed, service.ToastError)
		return Response{}
	}

	common.LogInfo("Exported transactions", common.Fields{"location": location, "count": e.ledger.Len()})
	e.presenter.Toast(ToastExported, service.ToastSuccess)
	return Response{Reply: ReplyExported}
}

// speak hands a reply to the speaker when voice responses are enabled.
func (e *Executor) speak(ctx context.Context, text string) {
	if !e.ledger.Settings().VoiceResponseEnabled {
		return
	}
	if err := e.speaker.Speak(ctx, text); err != nil {
		common.LogError(err, "Failed to speak reply", nil)
	}
}

// Refresh recomputes budget spend, persists it and pushes a new snapshot
// to the presenter.
func (e *Executor) Refresh(ctx context.Context) {
	e.ledger.RefreshBudgets(ctx)
	e.presenter.Refresh(e.ledger.Snapshot(e.filter))
}

// Snapshot returns the current presentation data without refreshing.
func (e *Executor) Snapshot() analysis.Snapshot {
	return e.ledger.Snapshot(e.filter)
}

// Filter returns the active transaction table filter.
func (e *Executor) Filter() analysis.Filter {
	return e.filter
}

// SetFilter changes the transaction table filter and refreshes.
func (e *Executor) SetFilter(f analysis.Filter) {
	e.filter = f
	e.presenter.Refresh(e.ledger.Snapshot(e.filter))
}

type nopSpeaker struct{}

func (nopSpeaker) Speak(context.Context, string) error { return nil }

type nopPresenter struct{}

func (nopPresenter) Refresh(analysis.Snapshot)        {}
func (nopPresenter) Navigate(model.Tab)               {}
func (nopPresenter) Toast(string, service.ToastLevel) {}
func (nopPresenter) ShowHelp([]string)                {}
