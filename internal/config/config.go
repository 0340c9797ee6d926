// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Behavior BehaviorConfig `toml:"behavior"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds the calendar rules handed to the widget.
type CalendarConfig struct {
	Timezone           string `toml:"timezone"`               // IANA name, "Local" or "UTC"
	FirstWeekday       string `toml:"first_weekday"`          // e.g., "monday"
	MinDaysInFirstWeek int    `toml:"min_days_in_first_week"` // 1 (US) to 7; 4 is ISO 8601
	Earliest           string `toml:"earliest"`               // YYYY-MM-DD (optional)
	Latest             string `toml:"latest"`                 // YYYY-MM-DD (optional)
}

// BehaviorConfig holds navigation and selection settings.
type BehaviorConfig struct {
	Mode            string  `toml:"mode"` // "month" or "week"
	PastDaysEnabled bool    `toml:"past_days_enabled"`
	FollowSelection bool    `toml:"follow_selection"`
	SwipeThreshold  float64 `toml:"swipe_threshold"` // fraction of the viewport width
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "auto", "mocha", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			Timezone:           "Local",
			FirstWeekday:       "monday",
			MinDaysInFirstWeek: 4,
		},
		Behavior: BehaviorConfig{
			Mode:            "month",
			PastDaysEnabled: true,
			FollowSelection: false,
			SwipeThreshold:  0.15,
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "swipecal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Calendar overrides
	if v := os.Getenv("SWIPECAL_TIMEZONE"); v != "" {
		cfg.Calendar.Timezone = v
	}
	if v := os.Getenv("SWIPECAL_FIRST_WEEKDAY"); v != "" {
		cfg.Calendar.FirstWeekday = v
	}
	if v := os.Getenv("SWIPECAL_MIN_DAYS_IN_FIRST_WEEK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SWIPECAL_MIN_DAYS_IN_FIRST_WEEK: %w", err)
		}
		cfg.Calendar.MinDaysInFirstWeek = n
	}
	if v := os.Getenv("SWIPECAL_EARLIEST"); v != "" {
		cfg.Calendar.Earliest = v
	}
	if v := os.Getenv("SWIPECAL_LATEST"); v != "" {
		cfg.Calendar.Latest = v
	}

	// Behavior overrides
	if v := os.Getenv("SWIPECAL_MODE"); v != "" {
		cfg.Behavior.Mode = v
	}
	if v := os.Getenv("SWIPECAL_PAST_DAYS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SWIPECAL_PAST_DAYS_ENABLED: %w", err)
		}
		cfg.Behavior.PastDaysEnabled = b
	}
	if v := os.Getenv("SWIPECAL_FOLLOW_SELECTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SWIPECAL_FOLLOW_SELECTION: %w", err)
		}
		cfg.Behavior.FollowSelection = b
	}
	if v := os.Getenv("SWIPECAL_SWIPE_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SWIPECAL_SWIPE_THRESHOLD: %w", err)
		}
		cfg.Behavior.SwipeThreshold = f
	}

	// UI overrides
	if v := os.Getenv("SWIPECAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if !dateutil.IsValidWeekday(c.Calendar.FirstWeekday) {
		return fmt.Errorf("invalid first_weekday: %s", c.Calendar.FirstWeekday)
	}
	if c.Calendar.MinDaysInFirstWeek < 1 || c.Calendar.MinDaysInFirstWeek > 7 {
		return fmt.Errorf("min_days_in_first_week must be between 1 and 7, got %d", c.Calendar.MinDaysInFirstWeek)
	}

	earliest, latest, err := c.bounds(time.UTC)
	if err != nil {
		return err
	}
	if !earliest.IsZero() && !latest.IsZero() && !earliest.Before(latest) {
		return errors.New("earliest must be before latest")
	}

	if _, err := calendar.ParseMode(c.Behavior.Mode); err != nil {
		return err
	}
	if c.Behavior.SwipeThreshold <= 0 || c.Behavior.SwipeThreshold >= 1 {
		return fmt.Errorf("swipe_threshold must be between 0 and 1, got %g", c.Behavior.SwipeThreshold)
	}
	return nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	switch strings.ToLower(c.Calendar.Timezone) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Calendar.Timezone, err)
	}
	return loc, nil
}

// Mode returns the configured display mode.
func (c *Config) Mode() calendar.Mode {
	mode, err := calendar.ParseMode(c.Behavior.Mode)
	if err != nil {
		return calendar.Month
	}
	return mode
}

// NewCalendar builds the calendar rules described by the config.
func (c *Config) NewCalendar() (*calendar.Calendar, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	first, err := dateutil.ParseWeekday(c.Calendar.FirstWeekday)
	if err != nil {
		return nil, fmt.Errorf("first_weekday: %w", err)
	}
	earliest, latest, err := c.bounds(loc)
	if err != nil {
		return nil, err
	}

	cal := calendar.New(loc, first)
	cal.MinDaysInFirstWeek = c.Calendar.MinDaysInFirstWeek
	cal.Earliest = earliest
	cal.Latest = latest
	return cal, nil
}

func (c *Config) bounds(loc *time.Location) (earliest, latest time.Time, err error) {
	if c.Calendar.Earliest != "" {
		earliest, err = dateutil.ParseDate(c.Calendar.Earliest, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("earliest: %w", err)
		}
	}
	if c.Calendar.Latest != "" {
		latest, err = dateutil.ParseDate(c.Calendar.Latest, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("latest: %w", err)
		}
	}
	return earliest, latest, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
