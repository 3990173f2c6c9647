package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/logger"
	"github.com/rileyhilliard/moonwatch/internal/monitor"
	"github.com/rileyhilliard/moonwatch/internal/notify"
	"github.com/rileyhilliard/moonwatch/internal/ui"
)

// runReport performs one polling cycle and prints the report, optionally
// delivering it to Telegram as well.
func runReport(configPath string, send, daily bool) error {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(cfg.Monitoring.Timezone)
	if err != nil {
		return err
	}

	log := logger.NewEnvLogger("[moonwatch]")
	interval := time.Duration(cfg.Monitoring.IntervalMinutes) * time.Minute

	collector := monitor.NewCollector(
		monitor.WithInterfaces(cfg.Monitoring.Interfaces),
		monitor.WithCollectorLogger(log),
	)
	tracker := monitor.NewTracker(interval)

	notifier := notify.Notifier(notify.Func(func(context.Context, string) error { return nil }))
	if send {
		notifier = notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
			notify.WithLogger(log))
	}

	scheduler := monitor.NewScheduler(cfg.Hosts, collector, tracker, notifier,
		interval, loc, monitor.WithSchedulerLogger(log))

	ctx := context.Background()
	results := scheduler.Poll(ctx)

	var report string
	if daily {
		report = monitor.FormatDailyReport(time.Now().In(loc), results)
	} else {
		report = monitor.FormatIntervalReport(time.Now().In(loc), results)
	}

	printReport(report)

	if send {
		if err := notifier.Deliver(ctx, report); err != nil {
			return err
		}
		fmt.Println(ui.OnlineStyle.Render(ui.SymbolSuccess) + " Report sent to Telegram")
	}
	return nil
}

// printReport writes the report to stdout, dimming the divider lines when
// attached to a terminal.
func printReport(report string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(report)
		return
	}
	fmt.Print(ui.StyleReportForTerminal(report))
}
