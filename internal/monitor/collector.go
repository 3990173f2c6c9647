package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/logger"
	"github.com/rileyhilliard/moonwatch/pkg/sshutil"
)

const (
	// DefaultConnectTimeout bounds SSH connection establishment.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultCollectTimeout bounds one host's whole stat collection, so a
	// hung host can't stall a cycle.
	DefaultCollectTimeout = 30 * time.Second
)

// Collector gathers system metrics from remote hosts over SSH.
// It never returns an error: every transport or parse failure degrades to
// an offline or zero-defaulted HostMetrics.
type Collector struct {
	dial           sshutil.Dialer
	connectTimeout time.Duration
	collectTimeout time.Duration
	interfaces     []string
	log            logger.Logger
}

// CollectorOption customizes a Collector.
type CollectorOption func(*Collector)

// WithDialer overrides the SSH dialer (used in tests).
func WithDialer(dial sshutil.Dialer) CollectorOption {
	return func(c *Collector) { c.dial = dial }
}

// WithConnectTimeout sets the connection establishment timeout.
func WithConnectTimeout(d time.Duration) CollectorOption {
	return func(c *Collector) { c.connectTimeout = d }
}

// WithCollectTimeout sets the per-host collection timeout.
func WithCollectTimeout(d time.Duration) CollectorOption {
	return func(c *Collector) { c.collectTimeout = d }
}

// WithInterfaces sets the interface priority list for bandwidth counters.
func WithInterfaces(names []string) CollectorOption {
	return func(c *Collector) {
		if len(names) > 0 {
			c.interfaces = names
		}
	}
}

// WithCollectorLogger sets the logger.
func WithCollectorLogger(log logger.Logger) CollectorOption {
	return func(c *Collector) { c.log = log }
}

// NewCollector creates a metrics collector.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		dial:           sshutil.DialRunner,
		connectTimeout: DefaultConnectTimeout,
		collectTimeout: DefaultCollectTimeout,
		interfaces:     config.DefaultInterfaces,
		log:            logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect polls one host and returns its metrics. Transport failures yield
// an offline record with zeroed metrics and the error's description; parse
// failures default the affected metric to zero without marking the host
// offline.
func (c *Collector) Collect(ctx context.Context, host config.Host) HostMetrics {
	metrics := HostMetrics{
		Name:      host.Name,
		Timestamp: time.Now(),
		Status:    StatusOffline,
	}

	if err := ctx.Err(); err != nil {
		metrics.Err = condenseError(err)
		return metrics
	}

	runner, err := c.dial(sshutil.Target{
		Name:     host.Name,
		Host:     host.Host,
		Port:     host.Port,
		Username: host.Username,
		Password: host.Password,
	}, c.connectTimeout)
	if err != nil {
		c.log.Debug("dial %s failed: %v", host.Name, err)
		metrics.Err = condenseError(err)
		return metrics
	}
	defer runner.Close()

	runCtx, cancel := context.WithTimeout(ctx, c.collectTimeout)
	defer cancel()

	output, err := runner.Run(runCtx, BuildStatsCommand())
	if err != nil {
		c.log.Debug("stat command on %s failed: %v", host.Name, err)
		metrics.Err = condenseError(err)
		return metrics
	}

	c.parseOutput(&metrics, output)
	metrics.Status = StatusOnline
	metrics.Err = ""
	return metrics
}

// condenseError flattens a (possibly multi-line structured) error into the
// single-line description rendered in offline report sections.
func condenseError(err error) string {
	s := strings.TrimPrefix(err.Error(), "✗ ")
	return strings.Join(strings.Fields(s), " ")
}

// parseOutput splits the batched command output and parses each section.
// A missing or malformed section leaves that metric at zero.
func (c *Collector) parseOutput(metrics *HostMetrics, output string) {
	sections := strings.Split(output, OutputSeparator+"\n")

	if len(sections) >= 1 {
		metrics.CPU, metrics.Parsed.CPU = parseCPU(sections[0])
	}
	if len(sections) >= 2 {
		metrics.RAM, metrics.Parsed.RAM = parseRAM(sections[1])
	}
	if len(sections) >= 3 {
		metrics.Disk, metrics.Parsed.Disk = parseDisk(sections[2])
	}
	if len(sections) >= 4 {
		metrics.RxBytes, metrics.TxBytes, metrics.Parsed.Network = parseNetCounters(sections[3], c.interfaces)
	}
}
