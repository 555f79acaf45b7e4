package tui

import (
	"context"
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ledgervox/internal/engine"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/testutil"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

type fixture struct {
	speaker  *testutil.RecordingSpeaker
	exporter *testutil.RecordingExporter
	model    Model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	l := testutil.NewLedger(t, testutil.WithSamples())
	speaker := &testutil.RecordingSpeaker{}
	exporter := &testutil.RecordingExporter{Location: "financial_data.csv"}
	sink := NewSink()
	exec := engine.NewWithConfig(l, speaker, sink, engine.Config{Exporter: exporter})

	return &fixture{
		speaker:  speaker,
		exporter: exporter,
		model:    NewModel(context.Background(), exec, sink, WithSize(120, 40), WithToastDuration(time.Millisecond)),
	}
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

// finish runs a command produced by Update and feeds its commandDoneMsg
// back into the model.
func (f *fixture) finish(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(commandDoneMsg)
	require.True(t, ok, "expected commandDoneMsg, got %T", msg)
	return f.send(done)
}

func (f *fixture) say(t *testing.T, utterance string) tea.Cmd {
	t.Helper()
	f.send(keySpace())
	require.True(t, f.model.Listening())
	f.send(keyRunes(utterance))
	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	return f.finish(t, cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keySpace() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestModel_VoiceCommandAddsTransaction(t *testing.T) {
	f := newFixture(t)

	f.send(keySpace())
	assert.True(t, f.model.Listening())

	f.send(keyRunes("Add Expense 500 for food"))
	assert.Equal(t, "Add Expense 500 for food", f.model.Interim())
	assert.Empty(t, f.speaker.Spoken, "interim transcripts must not run commands")

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, f.model.Listening())
	assert.True(t, f.model.busy)

	f.finish(t, cmd)

	assert.False(t, f.model.busy)
	assert.Equal(t, "Added expense of ₹500 for Food", f.model.LastReply())
	assert.Equal(t, []string{"Added expense of ₹500 for Food"}, f.speaker.Spoken)

	recent := f.model.Snapshot().Recent
	require.NotEmpty(t, recent)
	assert.Equal(t, "Food", recent[0].Category)
	assert.Equal(t, "500", recent[0].Amount.String())
	require.Len(t, f.model.toasts, 1)
	assert.Equal(t, service.ToastSuccess, f.model.toasts[0].level)
}

func TestModel_BlankTranscriptIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.send(keySpace())
	f.send(keyRunes("   "))
	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, f.model.Listening())
	assert.False(t, f.model.busy)
	assert.Empty(t, f.speaker.Spoken)
}

func TestModel_EscapeStopsListening(t *testing.T) {
	f := newFixture(t)

	f.send(keySpace())
	f.send(keyRunes("add income"))
	cmd := f.send(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, f.model.Listening())
	assert.Empty(t, f.model.Interim())
	assert.False(t, f.model.quitting)
}

func TestModel_VoiceNavigation(t *testing.T) {
	f := newFixture(t)

	f.say(t, "go to analytics")

	assert.Equal(t, model.TabAnalytics, f.model.Tab())
	assert.Equal(t, "Showing analytics", f.model.LastReply())
	assert.Contains(t, stripANSI(f.model.View()), "Financial Health")
}

func TestModel_VoiceHelpOpensPanel(t *testing.T) {
	f := newFixture(t)

	f.say(t, "help")

	assert.True(t, f.model.showHelp)
	view := stripANSI(f.model.View())
	assert.Contains(t, view, "Voice Commands")
	assert.Contains(t, view, "what's my balance")

	f.send(keyRunes("?"))
	assert.False(t, f.model.showHelp)
}

func TestModel_TabKeys(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, model.TabDashboard, f.model.Tab())

	f.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.TabTransactions, f.model.Tab())

	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.TabAnalytics, f.model.Tab())

	f.send(keyRunes("3"))
	assert.Equal(t, model.TabBudget, f.model.Tab())
}

func TestModel_ToggleTheme(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, model.ThemeLight, f.model.theme.Name)

	f.finish(t, f.send(keyRunes("t")))

	assert.Equal(t, model.ThemeDark, f.model.theme.Name)
	assert.Equal(t, model.ThemeDark, f.model.Snapshot().Settings.Theme)
	assert.Contains(t, stripANSI(f.model.View()), "dark")
}

func TestModel_ToggleVoiceSilencesReplies(t *testing.T) {
	f := newFixture(t)

	f.finish(t, f.send(keyRunes("v")))
	require.False(t, f.model.Snapshot().Settings.VoiceResponseEnabled)

	f.say(t, "what's my balance")

	assert.Empty(t, f.speaker.Spoken)
	assert.NotEmpty(t, f.model.LastReply())
}

func TestModel_FilterCyclesTypes(t *testing.T) {
	f := newFixture(t)

	f.finish(t, f.send(keyRunes("f")))
	rows := f.model.Snapshot().Rows
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, model.TypeIncome, r.Type)
	}

	f.finish(t, f.send(keyRunes("f")))
	assert.Equal(t, model.TypeExpense, f.model.Snapshot().Filter.Type)

	f.finish(t, f.send(keyRunes("f")))
	assert.Equal(t, model.TransactionType(""), f.model.Snapshot().Filter.Type)
	assert.Len(t, f.model.Snapshot().Rows, 5)
}

func TestModel_ExportKey(t *testing.T) {
	f := newFixture(t)

	f.finish(t, f.send(keyRunes("e")))

	require.Len(t, f.exporter.Exported, 1)
	assert.Len(t, f.exporter.Exported[0], 5)
	assert.NotEmpty(t, f.model.LastReply())
}

func TestModel_ToastExpires(t *testing.T) {
	f := newFixture(t)

	f.say(t, "delete last transaction")
	require.Len(t, f.model.toasts, 1)

	f.send(toastExpiredMsg{id: f.model.toasts[0].id})
	assert.Empty(t, f.model.toasts)
}

func TestModel_Quit(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, f.model.View())
}

func TestModel_ViewsRenderEveryTab(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		tab  model.Tab
		want []string
	}{
		{model.TabDashboard, []string{"Balance", "₹32,000", "Recent Transactions", "Monthly salary"}},
		{model.TabTransactions, []string{"Transactions (5)", "Filter: All", "Movies and gaming"}},
		{model.TabBudget, []string{"Budget Progress", "Food", "₹15,000 / ₹20,000", "75%"}},
		{model.TabAnalytics, []string{"Expenses by Category", "Income vs Expenses", "Most frequent category"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			f.model.tab = tt.tab
			view := stripANSI(f.model.View())
			for _, want := range tt.want {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestSink_DrainPreservesOrder(t *testing.T) {
	s := NewSink()

	s.Navigate(model.TabBudget)
	s.Toast("Budget set", service.ToastSuccess)
	s.ShowHelp([]string{"help"})

	events := s.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, navigateEvent{tab: model.TabBudget}, events[0])
	assert.Equal(t, toastEvent{message: "Budget set", level: service.ToastSuccess}, events[1])
	assert.Empty(t, s.Drain())
}

func TestShiftTab(t *testing.T) {
	assert.Equal(t, model.TabTransactions, shiftTab(model.TabDashboard, 1))
	assert.Equal(t, model.TabAnalytics, shiftTab(model.TabDashboard, -1))
	assert.Equal(t, model.TabDashboard, shiftTab(model.TabAnalytics, 1))
	assert.Equal(t, model.TabDashboard, shiftTab("unknown", 1))
}
