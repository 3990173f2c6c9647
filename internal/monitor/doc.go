// Package monitor implements fleet polling, bandwidth accounting, report
// formatting, and the scheduling loop that ties them together.
//
// # Architecture
//
// One monitoring cycle flows through four stages:
//
//	Scheduler  - Decides when a cycle is due and drives the pipeline
//	Collector  - Gathers CPU, RAM, disk, and network counters over SSH
//	Tracker    - Converts cumulative counters into per-interval bandwidth
//	Formatter  - Renders results into Telegram-ready Markdown
//
// # Collection
//
// The Collector batches all four stat commands into a single SSH exec per
// host, splitting the output on "---" separators. It never returns an
// error: transport failures mark the host offline with a one-line error
// description, and parse failures silently default the affected metric to
// zero while the host stays online. This keeps a single misbehaving host
// from ever breaking a cycle.
//
// # Bandwidth Accounting
//
// /proc/net/dev exposes cumulative byte counters, so usage over an interval
// is the difference between two samples. The Tracker stores the last sample
// per host and, on each new observation, extrapolates the observed rate to
// one nominal reporting interval. The first observation of a host only
// establishes a baseline; samples less than a minute apart are ignored; and
// counter regressions (reboot, counter wrap) clamp to zero and re-baseline.
//
// # Scheduling
//
// The Scheduler runs two tasks on a one-second check loop: the interval
// report, which fires immediately at startup and then every configured
// interval, and the daily report at midnight in the configured timezone.
// Hosts are polled by a bounded worker pool; results keep config order.
package monitor
