package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/moonwatch/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
// Validation failure is fatal at startup: the scheduler never runs against a
// half-formed fleet.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Telegram.BotToken) == "" {
		return errors.New(errors.ErrConfig,
			"Telegram bot token is missing",
			"Set telegram.bot_token in moonwatch.yaml (get one from @BotFather)")
	}

	if strings.TrimSpace(cfg.Telegram.ChatID) == "" {
		return errors.New(errors.ErrConfig,
			"Telegram chat id is missing",
			"Set telegram.chat_id in moonwatch.yaml")
	}

	if len(cfg.Hosts) == 0 {
		return errors.New(errors.ErrConfig,
			"No hosts configured",
			"Add at least one host under 'hosts', or run 'moonwatch init'")
	}

	seen := make(map[string]bool)
	for i, host := range cfg.Hosts {
		if err := validateHost(i, host); err != nil {
			return err
		}
		if seen[host.Name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Duplicate host name '%s'", host.Name),
				"Host names key the bandwidth tracker and must be unique")
		}
		seen[host.Name] = true
	}

	if cfg.Monitoring.IntervalMinutes < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Polling interval must be at least 1 minute (got %d)", cfg.Monitoring.IntervalMinutes),
			"Set monitoring.interval_minutes to 1 or higher")
	}

	if _, err := time.LoadLocation(cfg.Monitoring.Timezone); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Unknown timezone '%s'", cfg.Monitoring.Timezone),
			"Use an IANA timezone name like 'UTC' or 'Asia/Tehran'")
	}

	return nil
}

func validateHost(index int, host Host) error {
	label := host.Name
	if label == "" {
		label = fmt.Sprintf("hosts[%d]", index)
	}

	if strings.TrimSpace(host.Name) == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host %s has no name", label),
			"Every host needs a unique 'name'")
	}
	if strings.ContainsAny(host.Name, " \t\n") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host name '%s' contains whitespace", host.Name),
			"Use a short identifier like 'web-1'")
	}
	if strings.TrimSpace(host.Host) == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' has no address", label),
			"Set 'host' to an IP or hostname")
	}
	if host.Port < 0 || host.Port > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' has invalid port %d", label, host.Port),
			"Use a port between 1 and 65535, or omit it for 22")
	}
	if strings.TrimSpace(host.Username) == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' has no username", label),
			"Set 'username' for SSH authentication")
	}

	return nil
}
