package monitor

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/logger"
	"github.com/rileyhilliard/moonwatch/internal/notify"
)

const (
	// defaultTick is the cadence at which the run loop checks for due tasks.
	defaultTick = time.Second
	// defaultMaxConcurrentPolls bounds parallel host polling within a cycle.
	defaultMaxConcurrentPolls = 4
)

// Scheduler drives the two periodic tasks: the interval status report and
// the daily report at midnight in the configured timezone. Per-host failures
// never abort a cycle; delivery failures are logged and the report dropped.
type Scheduler struct {
	hosts     []config.Host
	collector *Collector
	tracker   *Tracker
	notifier  notify.Notifier
	interval  time.Duration
	loc       *time.Location
	log       logger.Logger

	tick    time.Duration
	workers int
	now     func() time.Time
}

// SchedulerOption customizes a Scheduler.
type SchedulerOption func(*Scheduler)

// WithSchedulerLogger sets the logger.
func WithSchedulerLogger(log logger.Logger) SchedulerOption {
	return func(s *Scheduler) { s.log = log }
}

// WithSchedulerClock overrides the clock (used in tests).
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) { s.now = now }
}

// WithTick sets the run-loop tick (used in tests).
func WithTick(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.tick = d }
}

// WithMaxConcurrentPolls bounds the per-cycle polling worker pool.
func WithMaxConcurrentPolls(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewScheduler creates a scheduler for the fleet.
func NewScheduler(
	hosts []config.Host,
	collector *Collector,
	tracker *Tracker,
	notifier notify.Notifier,
	interval time.Duration,
	loc *time.Location,
	opts ...SchedulerOption,
) *Scheduler {
	s := &Scheduler{
		hosts:     hosts,
		collector: collector,
		tracker:   tracker,
		notifier:  notifier,
		interval:  interval,
		loc:       loc,
		log:       logger.Noop(),
		tick:      defaultTick,
		workers:   defaultMaxConcurrentPolls,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the scheduling loop until the context is cancelled.
// The interval task fires once immediately, then every interval; the daily
// task fires at the next midnight in the configured timezone. Cancellation
// abandons any partially completed cycle; the in-memory tracker resets to
// cold-start behavior on the next run.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info("scheduler started: %d hosts, interval %s, daily at 00:00 %s",
		len(s.hosts), s.interval, s.loc)

	nextInterval := s.now()
	nextDaily := nextMidnight(s.now().In(s.loc))

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		now := s.now()

		if !now.Before(nextInterval) {
			s.runIntervalCycle(ctx)
			nextInterval = s.now().Add(s.interval)
		}

		if !now.In(s.loc).Before(nextDaily) {
			s.runDailyCycle(ctx)
			nextDaily = nextMidnight(s.now().In(s.loc))
		}

		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Poll runs one fleet-wide collection pass. Hosts are polled by a bounded
// worker pool; results preserve config order. Each online host's counters
// feed the bandwidth tracker.
func (s *Scheduler) Poll(ctx context.Context) []HostReport {
	results := make([]HostReport, len(s.hosts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, host := range s.hosts {
		g.Go(func() error {
			metrics := s.collector.Collect(gctx, host)

			var usage IntervalUsage
			if metrics.Status == StatusOnline {
				usage = s.tracker.Delta(host.Name, metrics.RxBytes, metrics.TxBytes)
			}

			results[i] = HostReport{Metrics: metrics, Usage: usage}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// runIntervalCycle polls the fleet and delivers the live status report.
func (s *Scheduler) runIntervalCycle(ctx context.Context) {
	s.log.Info("starting monitoring cycle")

	results := s.Poll(ctx)
	report := FormatIntervalReport(s.now().In(s.loc), results)

	if err := s.notifier.Deliver(ctx, report); err != nil {
		s.log.Error("report delivery failed: %v", err)
		return
	}
	s.log.Info("monitoring cycle completed")
}

// runDailyCycle re-polls the fleet and delivers the daily report.
func (s *Scheduler) runDailyCycle(ctx context.Context) {
	s.log.Info("starting daily report cycle")

	results := s.Poll(ctx)
	report := FormatDailyReport(s.now().In(s.loc), results)

	if err := s.notifier.Deliver(ctx, report); err != nil {
		s.log.Error("daily report delivery failed: %v", err)
		return
	}
	s.log.Info("daily report delivered")
}

// nextMidnight returns the next 00:00 strictly after t, in t's location.
func nextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
