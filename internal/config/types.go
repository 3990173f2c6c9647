package config

// Config represents the complete moonwatch.yaml configuration file.
type Config struct {
	Telegram   TelegramConfig   `yaml:"telegram" mapstructure:"telegram"`
	Hosts      []Host           `yaml:"hosts" mapstructure:"hosts"`
	Monitoring MonitoringConfig `yaml:"monitoring" mapstructure:"monitoring"`
}

// TelegramConfig holds the notification channel credentials.
type TelegramConfig struct {
	// BotToken is the Telegram bot API token.
	BotToken string `yaml:"bot_token" mapstructure:"bot_token"`

	// ChatID is the chat or channel to deliver reports to.
	ChatID string `yaml:"chat_id" mapstructure:"chat_id"`
}

// Host defines a monitored machine and its connection settings.
// Hosts are read-only for the process lifetime.
type Host struct {
	// Name is the unique key identifying the host in reports.
	Name string `yaml:"name" mapstructure:"name"`

	// Host is the IP address or hostname to connect to.
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the SSH port (default 22).
	Port int `yaml:"port" mapstructure:"port"`

	// Username for SSH authentication.
	Username string `yaml:"username" mapstructure:"username"`

	// Password for SSH authentication. When empty, key-based auth is
	// attempted using the SSH agent and ~/.ssh identities.
	Password string `yaml:"password" mapstructure:"password"`
}

// MonitoringConfig controls the polling schedule and report rendering.
type MonitoringConfig struct {
	// IntervalMinutes is the polling interval for the live status report.
	IntervalMinutes int `yaml:"interval_minutes" mapstructure:"interval_minutes"`

	// Timezone used for report timestamps and the daily report schedule.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// Interfaces is the priority-ordered list of interface names consulted
	// for bandwidth counters. The first interface with counters present
	// wins; if none match, the first listed interface is used.
	Interfaces []string `yaml:"interfaces,omitempty" mapstructure:"interfaces"`
}

// DefaultInterfaces is the interface priority list used when the config
// doesn't name one.
var DefaultInterfaces = []string{
	"eth0", "ens3", "ens18", "ens160", "enp0s3", "eno1", "venet0", "em0",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Hosts: []Host{},
		Monitoring: MonitoringConfig{
			IntervalMinutes: 15,
			Timezone:        "UTC",
			Interfaces:      append([]string(nil), DefaultInterfaces...),
		},
	}
}
