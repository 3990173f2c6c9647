package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/moonwatch/internal/errors"
	"gopkg.in/yaml.v3"
)

// Write serializes the config to YAML and writes it to path.
// The file is written 0600 since it carries SSH passwords and the bot token.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Cannot create config directory %s", dir),
				"Check directory permissions")
		}
	}

	header := []byte("# moonwatch configuration\n# Generated by 'moonwatch init'\n")
	if err := os.WriteFile(path, append(header, data...), 0o600); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Cannot write config file %s", path),
			"Check file permissions")
	}

	return nil
}
