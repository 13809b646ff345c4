package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/service"
	"github.com/alexanderramin/tt/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const watchInterval = time.Second

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			ctx := cmd.Context()
			m := newWatchModel(ctx, app.Timer, app.quantumMinutes()*60)
			_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
}

type watchKeyMap struct {
	Stop    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultWatchKeys() watchKeyMap {
	return watchKeyMap{
		Stop:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop timer")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Refresh, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type (
	watchTickMsg   time.Time
	watchReportMsg struct {
		rep *service.DailyReport
		err error
	}
	watchStoppedMsg struct {
		entry *domain.HistoryEntry
		err   error
	}
)

// watchModel polls the timer service once a second and renders the running
// session. It never mutates state except on an explicit stop.
type watchModel struct {
	ctx     context.Context
	timer   service.TimerService
	quantum int64

	keys    watchKeyMap
	help    help.Model
	spinner spinner.Model

	rep      *service.DailyReport
	stopped  *domain.HistoryEntry
	stopIdle bool
	err      error
	quitting bool
}

func newWatchModel(ctx context.Context, svc service.TimerService, quantum int64) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = formatter.StylePurple

	return watchModel{
		ctx:     ctx,
		timer:   svc,
		quantum: quantum,
		keys:    defaultWatchKeys(),
		help:    help.New(),
		spinner: sp,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadReport(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func (m watchModel) loadReport() tea.Cmd {
	return func() tea.Msg {
		rep, err := m.timer.Report(m.ctx)
		return watchReportMsg{rep: rep, err: err}
	}
}

func (m watchModel) stopTimer() tea.Cmd {
	return func() tea.Msg {
		entry, err := m.timer.Stop(m.ctx)
		return watchStoppedMsg{entry: entry, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Stop):
			return m, m.stopTimer()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadReport()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case watchTickMsg:
		return m, tea.Batch(m.loadReport(), watchTick())

	case watchReportMsg:
		m.rep, m.err = msg.rep, msg.err

	case watchStoppedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stopped = msg.entry
		m.stopIdle = msg.entry == nil
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(formatter.Failure(m.err.Error()))
	case m.stopped != nil:
		b.WriteString(formatter.FormatStopped(m.stopped))
	case m.stopIdle:
		b.WriteString("No timer running.")
	case m.rep == nil:
		b.WriteString(m.spinner.View() + " Loading...")
	case m.rep.Current == nil:
		b.WriteString(formatter.Dim("No timer running."))
		if m.rep.TotalSeconds > 0 {
			b.WriteString(formatter.Dim(fmt.Sprintf(" Today: %s.", billing.FormatClock(m.rep.TotalSeconds))))
		}
	default:
		b.WriteString(m.runningView())
	}
	b.WriteString("\n")

	if !m.quitting {
		b.WriteString("\n" + m.help.View(m.keys) + "\n")
	}
	return b.String()
}

func (m watchModel) runningView() string {
	cur, now := m.rep.Current, m.rep.GeneratedAt
	raw, billed := timer.Elapsed(cur, now, m.quantum)

	lines := []string{
		m.spinner.View() + " " + formatter.Bold(formatter.Pair(cur.Customer, cur.Project)),
		"",
		fmt.Sprintf("Elapsed  %s", formatter.FormatElapsed(raw)),
		fmt.Sprintf("Billed   %s", billing.FormatBilled(billed)),
		fmt.Sprintf("Started  %s (%s)", timer.FormatHHMM(cur.StartedAt), formatter.Ago(cur.StartedAt, now)),
		fmt.Sprintf("Today    %s", billing.FormatClock(m.rep.TotalSeconds)),
	}
	for _, n := range cur.Notes {
		lines = append(lines, formatter.Dim("- "+n))
	}
	return formatter.RenderBox("Running", strings.Join(lines, "\n"))
}
