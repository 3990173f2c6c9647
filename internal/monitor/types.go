package monitor

import "time"

// Status reports whether a host responded to a poll.
type Status string

const (
	// StatusOnline indicates the host answered the stat queries.
	StatusOnline Status = "online"
	// StatusOffline indicates the poll failed at the transport layer.
	StatusOffline Status = "offline"
)

// HostMetrics contains the metrics collected from one host in one poll.
// Produced fresh each cycle; only the raw byte counters outlive it, inside
// the bandwidth tracker.
type HostMetrics struct {
	Name      string
	Timestamp time.Time

	// CPU utilization percent (0-100, one decimal).
	CPU float64
	// RAM utilization percent (0-100, one decimal).
	RAM float64
	// Disk utilization of the root filesystem, integer percent.
	Disk int

	// Cumulative byte counters from the kernel interface table.
	RxBytes int64
	TxBytes int64

	Status Status
	// Err holds a human-readable description when the host is offline.
	Err string

	// Parsed records which metrics were actually parsed versus defaulted
	// to zero. Not rendered in reports; tests assert on it.
	Parsed ParseFlags
}

// ParseFlags distinguishes parsed metrics from silent zero defaults.
type ParseFlags struct {
	CPU     bool
	RAM     bool
	Disk    bool
	Network bool
}

// IntervalUsage is the bandwidth extrapolated to one nominal polling
// interval, derived from two consecutive counter samples.
type IntervalUsage struct {
	RxBytes int64
	TxBytes int64
}

// Total returns combined input and output bytes.
func (u IntervalUsage) Total() int64 {
	return u.RxBytes + u.TxBytes
}

// HostReport pairs a host's poll result with its interval bandwidth usage.
type HostReport struct {
	Metrics HostMetrics
	Usage   IntervalUsage
}
