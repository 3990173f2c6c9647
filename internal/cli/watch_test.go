package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/monitor"
)

func testWatchModel() watchModel {
	hosts := []config.Host{
		{Name: "web-1", Host: "10.0.0.1", Port: 22, Username: "root"},
	}
	return newWatchModel(nil, hosts, 15*time.Second, time.UTC)
}

func TestWatchModel_QuitKeys(t *testing.T) {
	keys := map[string]tea.KeyMsg{
		"q":      {Type: tea.KeyRunes, Runes: []rune("q")},
		"ctrl+c": {Type: tea.KeyCtrlC},
		"esc":    {Type: tea.KeyEsc},
	}

	for name, msg := range keys {
		t.Run(name, func(t *testing.T) {
			m := testWatchModel()

			updated, cmd := m.Update(msg)

			require.NotNil(t, cmd)
			assert.True(t, updated.(watchModel).quitting)
		})
	}
}

func TestWatchModel_PollResultStopsSpinner(t *testing.T) {
	m := testWatchModel()

	results := []monitor.HostReport{
		{Metrics: monitor.HostMetrics{Name: "web-1", Status: monitor.StatusOnline, CPU: 10}},
	}

	updated, cmd := m.Update(pollResultMsg{results: results, at: time.Now()})

	wm := updated.(watchModel)
	assert.False(t, wm.polling)
	assert.Len(t, wm.results, 1)
	// A refresh tick is scheduled after each poll
	assert.NotNil(t, cmd)
}

func TestWatchModel_ViewRendersHosts(t *testing.T) {
	m := testWatchModel()
	m.polling = false
	m.lastPoll = time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	m.results = []monitor.HostReport{
		{
			Metrics: monitor.HostMetrics{
				Name: "web-1", Status: monitor.StatusOnline,
				CPU: 42.5, RAM: 63.0, Disk: 71,
			},
			Usage: monitor.IntervalUsage{RxBytes: 1536, TxBytes: 1024},
		},
		{
			Metrics: monitor.HostMetrics{Name: "db-1", Status: monitor.StatusOffline, Err: "down"},
		},
	}

	view := m.View()

	assert.Contains(t, view, "web-1")
	assert.Contains(t, view, "db-1")
	assert.Contains(t, view, "42.5%")
	assert.Contains(t, view, "1.5 KB")
	assert.Contains(t, view, "15:04:05")
}

func TestWatchModel_ViewWhileQuitting(t *testing.T) {
	m := testWatchModel()
	m.quitting = true

	assert.Empty(t, m.View())
}
