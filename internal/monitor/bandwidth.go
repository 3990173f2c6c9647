package monitor

import (
	"sync"
	"time"
)

// minSampleGap is the shortest elapsed time between two samples that yields
// a usable rate. Shorter gaps (rapid re-polls, retries) report zero instead
// of a noisy extrapolation.
const minSampleGap = 60 * time.Second

// bandwidthSample holds the last observed cumulative counters for one host.
type bandwidthSample struct {
	rx int64
	tx int64
	at time.Time
}

// Tracker converts cumulative interface counters into per-interval usage.
// One instance is shared across the process lifetime, keyed by host name;
// samples are never deleted while the process runs.
type Tracker struct {
	mu       sync.Mutex
	samples  map[string]bandwidthSample
	interval time.Duration
	now      func() time.Time
}

// TrackerOption customizes a Tracker.
type TrackerOption func(*Tracker)

// WithTrackerClock overrides the clock (used in tests).
func WithTrackerClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a tracker that extrapolates usage over the given
// nominal reporting interval.
func NewTracker(interval time.Duration, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		samples:  make(map[string]bandwidthSample),
		interval: interval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Delta records the current cumulative counters for the host and returns the
// bandwidth used over one nominal interval.
//
// The first observation of a host establishes its baseline and reports zero.
// Observations less than a minute after the previous sample report zero and
// leave the stored sample untouched. Otherwise the rate over the actual
// elapsed time is extrapolated to the nominal interval, normalizing the
// figure against cycle drift and slow hosts.
//
// Counter regressions (wraparound, interface restart) clamp to zero usage
// and re-baseline from the current values.
func (t *Tracker) Delta(hostName string, rx, tx int64) IntervalUsage {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	prev, exists := t.samples[hostName]
	if !exists {
		t.samples[hostName] = bandwidthSample{rx: rx, tx: tx, at: now}
		return IntervalUsage{}
	}

	elapsed := now.Sub(prev.at)
	if elapsed < minSampleGap {
		return IntervalUsage{}
	}

	t.samples[hostName] = bandwidthSample{rx: rx, tx: tx, at: now}

	seconds := elapsed.Seconds()
	intervalSeconds := t.interval.Seconds()

	return IntervalUsage{
		RxBytes: extrapolate(rx-prev.rx, seconds, intervalSeconds),
		TxBytes: extrapolate(tx-prev.tx, seconds, intervalSeconds),
	}
}

// HasSample reports whether a baseline exists for the host.
func (t *Tracker) HasSample(hostName string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.samples[hostName]
	return ok
}

// Reset drops all stored samples, returning every host to the cold case.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples = make(map[string]bandwidthSample)
}

// extrapolate converts a raw counter delta over the actual elapsed seconds
// into usage over one nominal interval. Negative deltas clamp to zero.
func extrapolate(delta int64, elapsedSeconds, intervalSeconds float64) int64 {
	if delta <= 0 || elapsedSeconds <= 0 {
		return 0
	}
	rate := float64(delta) / elapsedSeconds
	return int64(rate * intervalSeconds)
}
