package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/logger"
	"github.com/rileyhilliard/moonwatch/internal/monitor"
	"github.com/rileyhilliard/moonwatch/internal/notify"
)

// runDaemon loads and validates the configuration, then runs the scheduling
// loop until interrupted. Config problems are fatal here, before the loop
// starts; once running, per-host and delivery failures only log.
func runDaemon(configPath string) error {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return err
	}

	// Timezone is validated with the config
	loc, err := time.LoadLocation(cfg.Monitoring.Timezone)
	if err != nil {
		return err
	}

	log := logger.NewEnvLogger("[moonwatch]")
	interval := time.Duration(cfg.Monitoring.IntervalMinutes) * time.Minute

	notifier := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
		notify.WithLogger(log))
	collector := monitor.NewCollector(
		monitor.WithInterfaces(cfg.Monitoring.Interfaces),
		monitor.WithCollectorLogger(log),
	)
	tracker := monitor.NewTracker(interval)

	scheduler := monitor.NewScheduler(cfg.Hosts, collector, tracker, notifier,
		interval, loc, monitor.WithSchedulerLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Monitoring %d host(s) every %d minute(s); daily report at 00:00 %s\n",
		len(cfg.Hosts), cfg.Monitoring.IntervalMinutes, cfg.Monitoring.Timezone)

	return scheduler.Run(ctx)
}
