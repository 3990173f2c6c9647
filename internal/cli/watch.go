package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/errors"
	"github.com/rileyhilliard/moonwatch/internal/monitor"
	"github.com/rileyhilliard/moonwatch/internal/notify"
	"github.com/rileyhilliard/moonwatch/internal/ui"
)

// runWatch opens the interactive fleet dashboard.
func runWatch(configPath, intervalFlag string) error {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return err
	}

	refresh, err := time.ParseDuration(intervalFlag)
	if err != nil || refresh < time.Second {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid refresh interval %q", intervalFlag),
			"Use a duration of at least one second, like 15s or 1m")
	}

	loc, err := time.LoadLocation(cfg.Monitoring.Timezone)
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.Monitoring.IntervalMinutes) * time.Minute
	collector := monitor.NewCollector(monitor.WithInterfaces(cfg.Monitoring.Interfaces))
	tracker := monitor.NewTracker(interval)
	discard := notify.Func(func(context.Context, string) error { return nil })

	scheduler := monitor.NewScheduler(cfg.Hosts, collector, tracker, discard,
		interval, loc)

	model := newWatchModel(scheduler, cfg.Hosts, refresh, loc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// pollResultMsg carries one completed fleet poll.
type pollResultMsg struct {
	results []monitor.HostReport
	at      time.Time
}

// pollTickMsg schedules the next poll.
type pollTickMsg struct{}

// watchModel is the Bubble Tea model for the dashboard.
type watchModel struct {
	scheduler *monitor.Scheduler
	hosts     []config.Host
	refresh   time.Duration
	loc       *time.Location

	spinner  spinner.Model
	results  []monitor.HostReport
	lastPoll time.Time
	polling  bool
	quitting bool
}

func newWatchModel(scheduler *monitor.Scheduler, hosts []config.Host, refresh time.Duration, loc *time.Location) watchModel {
	return watchModel{
		scheduler: scheduler,
		hosts:     hosts,
		refresh:   refresh,
		loc:       loc,
		spinner:   ui.NewSpinner(),
		polling:   true,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pollCmd())
}

// pollCmd runs a fleet poll off the UI goroutine.
func (m watchModel) pollCmd() tea.Cmd {
	scheduler := m.scheduler
	return func() tea.Msg {
		results := scheduler.Poll(context.Background())
		return pollResultMsg{results: results, at: time.Now()}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.polling {
				m.polling = true
				return m, tea.Batch(m.spinner.Tick, m.pollCmd())
			}
		}

	case pollResultMsg:
		m.results = msg.results
		m.lastPoll = msg.at
		m.polling = false
		return m, tea.Tick(m.refresh, func(time.Time) tea.Msg { return pollTickMsg{} })

	case pollTickMsg:
		m.polling = true
		return m, tea.Batch(m.spinner.Tick, m.pollCmd())

	case spinner.TickMsg:
		if m.polling {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	header := ui.TitleStyle.Render("moonwatch") + "  fleet dashboard\n"

	var status string
	switch {
	case m.polling && m.results == nil:
		status = m.spinner.View() + " polling " + fmt.Sprintf("%d host(s)...", len(m.hosts))
	case m.polling:
		status = m.spinner.View() + " refreshing..."
	default:
		status = ui.MutedStyle.Render("last poll " + m.lastPoll.In(m.loc).Format("15:04:05"))
	}

	body := ""
	if m.results != nil {
		body = m.resultsTable().View() + "\n"
	}

	help := ui.MutedStyle.Render("q quit · r refresh now")

	return header + "\n" + body + status + "\n\n" + help + "\n"
}

// resultsTable renders the latest poll as a table, one row per host.
func (m watchModel) resultsTable() table.Model {
	columns := []ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "Host", Width: 16},
		{Title: "CPU", Width: 7},
		{Title: "RAM", Width: 7},
		{Title: "Disk", Width: 6},
		{Title: "In", Width: 10},
		{Title: "Out", Width: 10},
	}

	rows := make([]table.Row, 0, len(m.results))
	for _, r := range m.results {
		if r.Metrics.Status != monitor.StatusOnline {
			rows = append(rows, table.Row{
				ui.SymbolFail, r.Metrics.Name, "-", "-", "-", "-", "-",
			})
			continue
		}
		rows = append(rows, table.Row{
			ui.SymbolSuccess,
			r.Metrics.Name,
			fmt.Sprintf("%.1f%%", r.Metrics.CPU),
			fmt.Sprintf("%.1f%%", r.Metrics.RAM),
			fmt.Sprintf("%d%%", r.Metrics.Disk),
			monitor.FormatBytes(r.Usage.RxBytes),
			monitor.FormatBytes(r.Usage.TxBytes),
		})
	}

	return ui.NewTable(columns, rows)
}
