package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/moonwatch/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = "moonwatch.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/moonwatch"
	// SystemConfigDir is the system-wide config directory for service installs.
	SystemConfigDir = "/etc/moonwatch"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'moonwatch init' to create one, or specify it with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. moonwatch.yaml in current directory
// 3. ~/.config/moonwatch/moonwatch.yaml
// 4. /etc/moonwatch/moonwatch.yaml (service installs)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. User config
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		userConfig := filepath.Join(home, GlobalConfigDir, ConfigFileName)
		if _, err := os.Stat(userConfig); err == nil {
			return userConfig, nil
		}
	}

	// 4. System config
	systemConfig := filepath.Join(SystemConfigDir, ConfigFileName)
	if _, err := os.Stat(systemConfig); err == nil {
		return systemConfig, nil
	}

	return "", nil
}

// LoadAndValidate locates the config, loads it, and validates it.
// This is the startup path for commands that need a working fleet config;
// any failure here is fatal before the scheduling loop starts.
func LoadAndValidate(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'moonwatch init' to create moonwatch.yaml")
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if len(cfg.Monitoring.Interfaces) == 0 {
		cfg.Monitoring.Interfaces = append([]string(nil), DefaultInterfaces...)
	}
	for i := range cfg.Hosts {
		if cfg.Hosts[i].Port == 0 {
			cfg.Hosts[i].Port = 22
		}
	}

	return cfg, nil
}

// setDefaults configures viper defaults that merge under explicit values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("monitoring.interval_minutes", 15)
	v.SetDefault("monitoring.timezone", "UTC")
}
