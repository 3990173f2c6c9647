package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/moonwatch/internal/config"
	"github.com/rileyhilliard/moonwatch/internal/errors"
	"github.com/rileyhilliard/moonwatch/internal/notify"
	"github.com/rileyhilliard/moonwatch/internal/ui"
)

// runInit walks through Telegram credentials and host details interactively
// and writes moonwatch.yaml to the current directory.
func runInit(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if err := promptTelegram(cfg); err != nil {
		return err
	}
	if err := promptHosts(cfg); err != nil {
		return err
	}
	if err := promptInterval(cfg); err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Wrote %s with %d host(s)\n",
		ui.OnlineStyle.Render(ui.SymbolSuccess), configPath, len(cfg.Hosts))

	return offerTestMessage(cfg)
}

func promptTelegram(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Telegram bot token").
				Description("Create a bot with @BotFather to get a token").
				Placeholder("123456789:ABCdefGHIjklMNOpqrsTUVwxyz").
				Value(&cfg.Telegram.BotToken).
				Validate(requireNonEmpty("bot token")),
			huh.NewInput().
				Title("Telegram chat ID").
				Description("The chat that receives reports; @userinfobot can tell you yours").
				Placeholder("-1001234567890").
				Value(&cfg.Telegram.ChatID).
				Validate(requireNonEmpty("chat ID")),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get Telegram credentials", "")
	}
	return nil
}

func promptHosts(cfg *config.Config) error {
	for {
		host := config.Host{Port: 22}
		portStr := "22"
		var addAnother bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Host name").
					Description("A friendly name shown in reports").
					Placeholder("web-1").
					Value(&host.Name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("host name is required")
						}
						if strings.ContainsAny(s, " \t\n") {
							return fmt.Errorf("host name cannot contain whitespace")
						}
						return nil
					}),
				huh.NewInput().
					Title("Address").
					Description("Hostname or IP address").
					Placeholder("203.0.113.10").
					Value(&host.Host).
					Validate(requireNonEmpty("address")),
				huh.NewInput().
					Title("SSH port").
					Value(&portStr).
					Validate(func(s string) error {
						p, err := strconv.Atoi(strings.TrimSpace(s))
						if err != nil || p < 1 || p > 65535 {
							return fmt.Errorf("port must be a number between 1 and 65535")
						}
						return nil
					}),
				huh.NewInput().
					Title("Username").
					Placeholder("root").
					Value(&host.Username).
					Validate(requireNonEmpty("username")),
				huh.NewInput().
					Title("Password").
					Description("Leave empty to use SSH keys or the agent").
					EchoMode(huh.EchoModePassword).
					Value(&host.Password),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another host?").
					Value(&addAnother),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get host details", "")
		}

		host.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))
		cfg.Hosts = append(cfg.Hosts, host)

		if !addAnother {
			return nil
		}
	}
}

func promptInterval(cfg *config.Config) error {
	intervalStr := strconv.Itoa(cfg.Monitoring.IntervalMinutes)
	tz := cfg.Monitoring.Timezone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reporting interval (minutes)").
				Value(&intervalStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("interval must be a whole number of minutes, at least 1")
					}
					return nil
				}),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name used for report timestamps and the daily report").
				Placeholder("UTC").
				Value(&tz).
				Validate(func(s string) error {
					if _, err := time.LoadLocation(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("unknown timezone %q", s)
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get monitoring settings", "")
	}

	cfg.Monitoring.IntervalMinutes, _ = strconv.Atoi(strings.TrimSpace(intervalStr))
	cfg.Monitoring.Timezone = strings.TrimSpace(tz)
	return nil
}

// offerTestMessage optionally sends a hello message so credentials get
// verified before the daemon ever runs.
func offerTestMessage(cfg *config.Config) error {
	var sendTest bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Send a test message to Telegram now?").
				Value(&sendTest),
		),
	)
	if err := form.Run(); err != nil || !sendTest {
		return nil
	}

	notifier := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := notifier.Deliver(ctx, "✅ moonwatch is configured and can reach this chat."); err != nil {
		fmt.Printf("%s Test message failed: %v\n", ui.OfflineStyle.Render(ui.SymbolFail), err)
		fmt.Println("The config was still written; fix the credentials and try 'moonwatch report --send'.")
		return nil
	}

	fmt.Printf("%s Test message delivered\n", ui.OnlineStyle.Render(ui.SymbolSuccess))
	return nil
}

func requireNonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
