package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	LeadMinutes int    `mapstructure:"lead_minutes"` // minutes before an appointment starts
	Timezone    string `mapstructure:"timezone"`     // e.g. "Europe/Berlin" (optional)
}

type Config struct {
	Color    bool           `mapstructure:"color"`
	DataDir  string         `mapstructure:"data_dir"` // override of ~/.local/share/termin
	Reminder ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		Color:   true,
		DataDir: "",
		Reminder: ReminderConfig{
			Enabled:     true,
			LeadMinutes: 30,
			Timezone:    "",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "termin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("color", cfg.Color)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.lead_minutes", cfg.Reminder.LeadMinutes)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.Reminder.LeadMinutes < 0 {
		cfg.Reminder.LeadMinutes = 0
	}
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
