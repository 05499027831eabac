// Package config loads shelf settings from .shelf.yaml and SHELF_* env vars.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	// APIBase is the base URL of the shelf server.
	APIBase string
	// CachePath is where the offline collection snapshot lives.
	CachePath string
	// PollInterval drives the printer status poller.
	PollInterval time.Duration
	// Currency is the symbol used when printing cost estimates.
	Currency string
}

// Load reads configuration, applying defaults for anything unset.
func Load() (*Config, error) {
	viper.SetDefault("api", "http://localhost:8799")
	viper.SetDefault("cache", "~/.shelf.db")
	viper.SetDefault("poll-interval", "10s")
	viper.SetDefault("currency", "$")

	viper.SetConfigName(".shelf") // .yaml is implicit
	viper.SetEnvPrefix("SHELF")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if override := os.Getenv("SHELF_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cachePath, err := homedir.Expand(viper.GetString("cache"))
	if err != nil {
		return nil, fmt.Errorf("config: expand cache path: %w", err)
	}

	interval := viper.GetDuration("poll-interval")
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &Config{
		APIBase:      strings.TrimRight(viper.GetString("api"), "/"),
		CachePath:    cachePath,
		PollInterval: interval,
		Currency:     viper.GetString("currency"),
	}, nil
}
