package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/UraniumCorporation/maiar-audit/pkg/registry"
)

// configDir is the directory under the user config root holding the
// optional config file.
const configDir = "maiar-audit"

// Config holds the tool configuration. All fields are optional; the zero
// value uses unauthenticated requests and the default timeout.
type Config struct {
	GitHubToken string   `toml:"github_token"`
	Timeout     duration `toml:"timeout"`
}

// duration wraps time.Duration so TOML values like "10s" decode naturally.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// loadConfig reads the config file if present and applies the GITHUB_TOKEN
// environment variable on top. A missing file is not an error.
func loadConfig() (*Config, error) {
	cfg := &Config{Timeout: duration{registry.DefaultTimeout}}

	path, err := configPath()
	if err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHubToken = token
	}
	if cfg.Timeout.Duration <= 0 {
		cfg.Timeout = duration{registry.DefaultTimeout}
	}
	return cfg, nil
}

func configPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configDir, "config.toml"), nil
}
