package monitor

import (
	"fmt"
	"strings"
	"time"
)

// divider separates sections in the Telegram report.
var divider = strings.Repeat("⎯", 21) + "\n"

// FormatBytes renders a byte count with 1024-based unit scaling:
// 0 → "0.0 B", 1536 → "1.5 KB", 1073741824 → "1.0 GB".
func FormatBytes(bytes int64) string {
	v := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if v < 1024 {
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1f PB", v)
}

// FormatIntervalReport renders the live status report: a timestamped header,
// one section per host, and fleet totals summed over online hosts only.
// The timestamp should already be localized to the report timezone.
func FormatIntervalReport(ts time.Time, results []HostReport) string {
	var b strings.Builder

	b.WriteString("📈 **Panel Monitoring - Live Status**\n")
	writeHeader(&b, ts)

	var totalRx, totalTx int64
	for _, r := range results {
		if r.Metrics.Status == StatusOnline {
			writeOnlineSection(&b, r)
			totalRx += r.Usage.RxBytes
			totalTx += r.Usage.TxBytes
		} else {
			writeOfflineSection(&b, r.Metrics)
		}
	}

	b.WriteString("📊 **Panel Totals**\n")
	fmt.Fprintf(&b, "📤 Total Input: %s\n", FormatBytes(totalRx))
	fmt.Fprintf(&b, "📥 Total Output: %s\n", FormatBytes(totalTx))
	fmt.Fprintf(&b, "📊 Total Traffic: %s\n", FormatBytes(totalRx+totalTx))

	return b.String()
}

// FormatDailyReport renders the daily report. The min/max bands are synthetic
// envelopes around the current readings (CPU ±10, RAM ±15, Disk ±5, floored
// at 0), not a historical aggregation.
func FormatDailyReport(ts time.Time, results []HostReport) string {
	var b strings.Builder

	b.WriteString("📊 **Daily Report - 24h Averages**\n")
	writeHeader(&b, ts)

	for _, r := range results {
		if r.Metrics.Status != StatusOnline {
			writeOfflineSection(&b, r.Metrics)
			continue
		}

		m := r.Metrics
		fmt.Fprintf(&b, "🖥 **%s**\n", m.Name)
		fmt.Fprintf(&b, "📤 Avg Input: %s\n", FormatBytes(r.Usage.RxBytes))
		fmt.Fprintf(&b, "📥 Avg Output: %s\n", FormatBytes(r.Usage.TxBytes))
		fmt.Fprintf(&b, "📊 Avg Total: %s\n\n", FormatBytes(r.Usage.Total()))
		fmt.Fprintf(&b, "⚡ CPU: Min %g%% / Max %g%%\n", floorZero(m.CPU-10), m.CPU+10)
		fmt.Fprintf(&b, "💾 RAM: Min %g%% / Max %g%%\n", floorZero(m.RAM-15), m.RAM+15)
		fmt.Fprintf(&b, "🗂 Disk: Min %d%% / Max %d%%\n", intFloorZero(m.Disk-5), m.Disk+5)
		b.WriteString(divider)
	}

	return b.String()
}

// writeHeader appends the localized timestamp line and leading divider.
func writeHeader(b *strings.Builder, ts time.Time) {
	fmt.Fprintf(b, "⏰ %s - %s (%s)\n", ts.Format("2006-01-02"), ts.Format("15:04"), ts.Format("MST"))
	b.WriteString(divider)
	b.WriteString("\n")
}

func writeOnlineSection(b *strings.Builder, r HostReport) {
	m := r.Metrics
	fmt.Fprintf(b, "🖥 **%s**\n", m.Name)
	fmt.Fprintf(b, "📤 Input: %s\n", FormatBytes(r.Usage.RxBytes))
	fmt.Fprintf(b, "📥 Output: %s\n", FormatBytes(r.Usage.TxBytes))
	fmt.Fprintf(b, "📊 Total: %s\n\n", FormatBytes(r.Usage.Total()))
	fmt.Fprintf(b, "⚡ CPU: %.1f%%\n", m.CPU)
	fmt.Fprintf(b, "💾 RAM: %.1f%%\n", m.RAM)
	fmt.Fprintf(b, "🗂 Disk: %d%%\n", m.Disk)
	b.WriteString(divider)
}

func writeOfflineSection(b *strings.Builder, m HostMetrics) {
	errText := m.Err
	if errText == "" {
		errText = "Connection failed"
	}
	fmt.Fprintf(b, "🖥 **%s** ❌ OFFLINE\n", m.Name)
	fmt.Fprintf(b, "Error: %s\n", errText)
	b.WriteString(divider)
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func intFloorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
