package monitor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0 B"},
		{500, "500.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5242880, "5.0 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
		{1125899906842624, "1.0 PB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatBytes_UnitsGrowWithMagnitude(t *testing.T) {
	unitRank := map[string]int{"B": 0, "KB": 1, "MB": 2, "GB": 3, "TB": 4, "PB": 5}

	prev := 0
	for _, bytes := range []int64{1, 1024, 1 << 20, 1 << 30, 1 << 40, 1 << 50} {
		parts := strings.Fields(FormatBytes(bytes))
		require.Len(t, parts, 2)
		rank, ok := unitRank[parts[1]]
		require.True(t, ok, "unknown unit %q", parts[1])
		assert.GreaterOrEqual(t, rank, prev)
		prev = rank
	}
}

func reportTime(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("UTC")
	require.NoError(t, err)
	return time.Date(2026, 3, 1, 15, 4, 0, 0, loc)
}

func mixedFleet() []HostReport {
	return []HostReport{
		{
			Metrics: HostMetrics{
				Name: "web-1", Status: StatusOnline,
				CPU: 42.5, RAM: 63.0, Disk: 71,
			},
			Usage: IntervalUsage{RxBytes: 1572864, TxBytes: 524288}, // 1.5 MB / 512 KB
		},
		{
			Metrics: HostMetrics{
				Name: "db-1", Status: StatusOnline,
				CPU: 5.0, RAM: 30.0, Disk: 40,
			},
			Usage: IntervalUsage{RxBytes: 1048576, TxBytes: 1048576}, // 1 MB each way
		},
		{
			Metrics: HostMetrics{
				Name: "cache-1", Status: StatusOffline,
				Err: "connection refused",
			},
		},
	}
}

func TestFormatIntervalReport(t *testing.T) {
	report := FormatIntervalReport(reportTime(t), mixedFleet())

	assert.True(t, strings.HasPrefix(report, "📈 **Panel Monitoring - Live Status**\n"))
	assert.Contains(t, report, "⏰ 2026-03-01 - 15:04 (UTC)\n")

	// Online sections
	assert.Contains(t, report, "🖥 **web-1**\n📤 Input: 1.5 MB\n📥 Output: 512.0 KB\n📊 Total: 2.0 MB\n\n⚡ CPU: 42.5%\n💾 RAM: 63.0%\n🗂 Disk: 71%\n")
	assert.Contains(t, report, "🖥 **db-1**\n📤 Input: 1.0 MB\n📥 Output: 1.0 MB\n📊 Total: 2.0 MB\n\n⚡ CPU: 5.0%\n💾 RAM: 30.0%\n🗂 Disk: 40%\n")

	// Offline section carries the error, no metrics
	assert.Contains(t, report, "🖥 **cache-1** ❌ OFFLINE\nError: connection refused\n")

	// Totals sum online hosts only
	assert.Contains(t, report, "📊 **Panel Totals**\n📤 Total Input: 2.5 MB\n📥 Total Output: 1.5 MB\n📊 Total Traffic: 4.0 MB\n")

	// Hosts render in input order
	assert.Less(t, strings.Index(report, "web-1"), strings.Index(report, "db-1"))
	assert.Less(t, strings.Index(report, "db-1"), strings.Index(report, "cache-1"))
}

func TestFormatIntervalReport_OfflineDefaultError(t *testing.T) {
	report := FormatIntervalReport(reportTime(t), []HostReport{
		{Metrics: HostMetrics{Name: "web-1", Status: StatusOffline}},
	})

	assert.Contains(t, report, "Error: Connection failed\n")
	assert.Contains(t, report, "📤 Total Input: 0.0 B\n")
}

func TestFormatIntervalReport_AllOffline(t *testing.T) {
	report := FormatIntervalReport(reportTime(t), []HostReport{
		{Metrics: HostMetrics{Name: "a", Status: StatusOffline, Err: "x"}},
		{Metrics: HostMetrics{Name: "b", Status: StatusOffline, Err: "y"}},
	})

	assert.Contains(t, report, "📊 Total Traffic: 0.0 B\n")
	assert.NotContains(t, report, "⚡ CPU")
}

func TestFormatDailyReport(t *testing.T) {
	report := FormatDailyReport(reportTime(t), mixedFleet())

	assert.True(t, strings.HasPrefix(report, "📊 **Daily Report - 24h Averages**\n"))
	assert.Contains(t, report, "⏰ 2026-03-01 - 15:04 (UTC)\n")

	assert.Contains(t, report, "🖥 **web-1**\n📤 Avg Input: 1.5 MB\n📥 Avg Output: 512.0 KB\n📊 Avg Total: 2.0 MB\n")

	// Synthetic bands around current readings
	assert.Contains(t, report, "⚡ CPU: Min 32.5% / Max 52.5%\n")
	assert.Contains(t, report, "💾 RAM: Min 48% / Max 78%\n")
	assert.Contains(t, report, "🗂 Disk: Min 66% / Max 76%\n")

	assert.Contains(t, report, "🖥 **cache-1** ❌ OFFLINE\nError: connection refused\n")
}

func TestFormatDailyReport_BandsFloorAtZero(t *testing.T) {
	report := FormatDailyReport(reportTime(t), []HostReport{
		{
			Metrics: HostMetrics{
				Name: "tiny", Status: StatusOnline,
				CPU: 5, RAM: 10, Disk: 3,
			},
		},
	})

	assert.Contains(t, report, "⚡ CPU: Min 0% / Max 15%\n")
	assert.Contains(t, report, "💾 RAM: Min 0% / Max 25%\n")
	assert.Contains(t, report, "🗂 Disk: Min 0% / Max 8%\n")
}

func TestFormatDailyReport_WholeBandsDropDecimals(t *testing.T) {
	report := FormatDailyReport(reportTime(t), []HostReport{
		{
			Metrics: HostMetrics{
				Name: "even", Status: StatusOnline,
				CPU: 50, RAM: 60, Disk: 50,
			},
		},
	})

	assert.Contains(t, report, "⚡ CPU: Min 40% / Max 60%\n")
	assert.Contains(t, report, "💾 RAM: Min 45% / Max 75%\n")
}

func TestDividerWidth(t *testing.T) {
	assert.Equal(t, 21, strings.Count(divider, "⎯"))
	assert.True(t, strings.HasSuffix(divider, "\n"))
}
