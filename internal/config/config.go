// Package config loads the resolved application configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// RefreshIntervalMS is the period between automatic state refreshes.
	RefreshIntervalMS int `mapstructure:"refresh_interval_ms"`
	// NotificationTTLSeconds is how long a notification stays visible.
	NotificationTTLSeconds int `mapstructure:"notification_ttl_seconds"`
	// MaxLogEntries is the number of commit log entries to load.
	MaxLogEntries int `mapstructure:"max_log_entries"`
}

// RefreshInterval returns the refresh period as a duration, never below 100ms.
func (c *Config) RefreshInterval() time.Duration {
	ms := c.RefreshIntervalMS
	if ms < 100 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

// NotificationTTL returns the notification lifetime as a duration.
func (c *Config) NotificationTTL() time.Duration {
	s := c.NotificationTTLSeconds
	if s < 1 {
		s = 1
	}
	return time.Duration(s) * time.Second
}

// Load reads configuration from ~/.config/easygit/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("EASYGIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("refresh_interval_ms", 1000)
	v.SetDefault("notification_ttl_seconds", 10)
	v.SetDefault("max_log_entries", 200)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "easygit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "easygit")
}
