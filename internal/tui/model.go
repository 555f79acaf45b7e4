// Package tui is the interactive dashboard: four tabs over the ledger and
// a voice prompt whose keystrokes act as interim transcripts and whose
// Enter submits the final one.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/engine"
	"github.com/Veraticus/ledgervox/internal/intent"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/tui/themes"
)

type toast struct {
	message string
	level   service.ToastLevel
	id      int
}

// Model holds the dashboard state. Commands run off the event loop one at
// a time; busy is set until their commandDoneMsg arrives.
type Model struct {
	ctx           context.Context
	executor      *engine.Executor
	sink          *Sink
	theme         themes.Theme
	snapshot      analysis.Snapshot
	keymap        KeyMap
	help          help.Model
	prompt        textinput.Model
	bar           progress.Model
	config        Config
	tab           model.Tab
	lastUtterance string
	lastReply     string
	examples      []string
	toasts        []toast
	nextToastID   int
	width         int
	height        int
	listening     bool
	busy          bool
	showHelp      bool
	quitting      bool
}

// NewModel creates the dashboard model. sink must be the presenter the
// executor was built with.
func NewModel(ctx context.Context, executor *engine.Executor, sink *Sink, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	prompt := textinput.New()
	prompt.Placeholder = "say a command, e.g. add expense 500 for food"
	prompt.CharLimit = 200

	snapshot := executor.Snapshot()
	m := Model{
		ctx:      ctx,
		executor: executor,
		sink:     sink,
		snapshot: snapshot,
		theme:    themes.For(snapshot.Settings.Theme),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		prompt:   prompt,
		bar:      progress.New(progress.WithoutPercentage(), progress.WithWidth(30)),
		config:   cfg,
		tab:      model.TabDashboard,
		examples: cfg.Examples,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.applyTheme()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = msg.Width - 12
		return m, nil

	case commandDoneMsg:
		m.busy = false
		if msg.utterance != "" {
			m.lastUtterance = msg.utterance
		}
		if msg.response.Reply != "" {
			m.lastReply = msg.response.Reply
		}
		return m, m.apply(msg.events)

	case toastExpiredMsg:
		kept := make([]toast, 0, len(m.toasts))
		for _, t := range m.toasts {
			if t.id != msg.id {
				kept = append(kept, t)
			}
		}
		m.toasts = kept
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.listening {
			return m.updateListening(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.listening {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateListening handles keys while the voice prompt is open. Every
// keystroke updates the interim transcript; Enter submits it as final.
func (m Model) updateListening(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Submit):
		utterance := m.prompt.Value()
		m.stopListening()
		if intent.Normalize(utterance) == "" || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.handle(utterance)

	case key.Matches(msg, m.keymap.Cancel):
		m.stopListening()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case m.showHelp && key.Matches(msg, m.keymap.Cancel):
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Listen):
		if m.busy {
			return m, nil
		}
		m.listening = true
		m.prompt.Reset()
		return m, m.prompt.Focus()

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = shiftTab(m.tab, 1)
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = shiftTab(m.tab, -1)
	case key.Matches(msg, m.keymap.Dashboard):
		m.tab = model.TabDashboard
	case key.Matches(msg, m.keymap.Transactions):
		m.tab = model.TabTransactions
	case key.Matches(msg, m.keymap.Budget):
		m.tab = model.TabBudget
	case key.Matches(msg, m.keymap.Analytics):
		m.tab = model.TabAnalytics
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Filter):
		m.busy = true
		f := m.snapshot.Filter
		f.Type = nextTypeFilter(f.Type)
		return m, m.run(func(context.Context) engine.Response {
			m.executor.SetFilter(f)
			return engine.Response{}
		})

	case key.Matches(msg, m.keymap.ToggleTheme):
		m.busy = true
		return m, m.run(func(ctx context.Context) engine.Response {
			m.executor.ToggleTheme(ctx)
			return engine.Response{}
		})

	case key.Matches(msg, m.keymap.ToggleVoice):
		m.busy = true
		enabled := !m.snapshot.Settings.VoiceResponseEnabled
		return m, m.run(func(ctx context.Context) engine.Response {
			m.executor.SetVoiceResponse(ctx, enabled)
			return engine.Response{}
		})

	case key.Matches(msg, m.keymap.Export):
		m.busy = true
		return m, m.run(func(ctx context.Context) engine.Response {
			return m.executor.Execute(ctx, intent.Export{})
		})
	}

	return m, nil
}

func (m *Model) stopListening() {
	m.listening = false
	m.prompt.Blur()
	m.prompt.Reset()
}

// handle runs one final transcript through the executor.
func (m Model) handle(utterance string) tea.Cmd {
	return func() tea.Msg {
		resp := m.executor.Handle(m.ctx, utterance)
		return commandDoneMsg{utterance: utterance, response: resp, events: m.sink.Drain()}
	}
}

// run executes fn off the event loop and reports its presentation events.
func (m Model) run(fn func(ctx context.Context) engine.Response) tea.Cmd {
	return func() tea.Msg {
		resp := fn(m.ctx)
		return commandDoneMsg{response: resp, events: m.sink.Drain()}
	}
}

// apply folds presentation events into the model and schedules toast
// expiry.
func (m *Model) apply(events []event) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range events {
		switch e := e.(type) {
		case refreshEvent:
			m.snapshot = e.snapshot
			m.applyTheme()
		case navigateEvent:
			m.tab = e.tab
		case toastEvent:
			m.nextToastID++
			id := m.nextToastID
			m.toasts = append(m.toasts, toast{id: id, message: e.message, level: e.level})
			cmds = append(cmds, tea.Tick(m.config.ToastDuration, func(time.Time) tea.Msg {
				return toastExpiredMsg{id: id}
			}))
		case helpEvent:
			m.examples = e.examples
			m.showHelp = true
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyTheme() {
	m.theme = themes.For(m.snapshot.Settings.Theme)
	m.prompt.PromptStyle = m.theme.Title
	m.prompt.Prompt = "🎤 "
}

func shiftTab(current model.Tab, delta int) model.Tab {
	for i, t := range model.Tabs {
		if t == current {
			n := len(model.Tabs)
			return model.Tabs[((i+delta)%n+n)%n]
		}
	}
	return model.TabDashboard
}

func nextTypeFilter(t model.TransactionType) model.TransactionType {
	switch t {
	case "":
		return model.TypeIncome
	case model.TypeIncome:
		return model.TypeExpense
	}
	return ""
}

// Tab returns the visible tab.
func (m Model) Tab() model.Tab {
	return m.tab
}

// Listening reports whether the voice prompt is open.
func (m Model) Listening() bool {
	return m.listening
}

// Interim returns the transcript typed so far.
func (m Model) Interim() string {
	return m.prompt.Value()
}

// LastReply returns the reply to the most recent command.
func (m Model) LastReply() string {
	return m.lastReply
}

// Snapshot returns the data the dashboard is drawing.
func (m Model) Snapshot() analysis.Snapshot {
	return m.snapshot
}
