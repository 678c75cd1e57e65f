// Package config loads the server configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/docshelf/internal/models"
)

const (
	defaultListen       = ":8080"
	defaultDBPath       = "./data/docshelf.db"
	defaultTimezone     = "UTC"
	defaultLogLevel     = "info"
	defaultSchedule     = "0 8 * * *"
	defaultHorizonDays  = 7
	defaultUpcomingDays = 30
)

// ReminderConfig controls the daily digest of upcoming events.
type ReminderConfig struct {
	Enabled bool `yaml:"enabled"`
	// Schedule is a standard 5-field cron expression evaluated in Timezone.
	Schedule    string `yaml:"schedule"`
	HorizonDays int    `yaml:"horizon_days"`
}

// Config is the top-level server configuration.
type Config struct {
	Listen string `yaml:"listen"`
	DBPath string `yaml:"db_path"`

	// Timezone is the IANA zone that defines "today" for upcoming events
	// and the reminder schedule.
	Timezone string `yaml:"timezone"`

	// DefaultCurrency seeds the settings row on first run only.
	DefaultCurrency string `yaml:"default_currency"`

	LogLevel     string         `yaml:"log_level"`
	UpcomingDays int            `yaml:"upcoming_days"`
	Reminder     ReminderConfig `yaml:"reminder"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:          defaultListen,
		DBPath:          defaultDBPath,
		Timezone:        defaultTimezone,
		DefaultCurrency: models.DefaultCurrency,
		LogLevel:        defaultLogLevel,
		UpcomingDays:    defaultUpcomingDays,
		Reminder: ReminderConfig{
			Enabled:     false,
			Schedule:    defaultSchedule,
			HorizonDays: defaultHorizonDays,
		},
	}
}

// Normalize fills in missing or invalid values with defaults.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	c.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))
	if _, ok := models.LookupCurrency(c.DefaultCurrency); !ok {
		c.DefaultCurrency = models.DefaultCurrency
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = defaultLogLevel
	}
	if c.UpcomingDays <= 0 {
		c.UpcomingDays = defaultUpcomingDays
	}
	if c.Reminder.Schedule == "" {
		c.Reminder.Schedule = defaultSchedule
	}
	if c.Reminder.HorizonDays <= 0 {
		c.Reminder.HorizonDays = defaultHorizonDays
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads the configuration at path, then applies environment overrides.
//
// If the file does not exist, a default config is written there with 0600
// permissions and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	var cfg *Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = Default()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.Listen = getEnv("LISTEN", c.Listen)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	if v := getEnv("UPCOMING_DAYS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UpcomingDays = n
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Save writes cfg to path atomically via a temp file and rename.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".docshelf-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
