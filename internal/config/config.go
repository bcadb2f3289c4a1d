package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/christopherklint97/jetlagr/internal/trip"
)

type Config struct {
	Profile   ProfileConfig  `toml:"profile"`
	Storage   StorageConfig  `toml:"storage"`
	Reminders ReminderConfig `toml:"reminders"`
	Logging   LoggingConfig  `toml:"logging"`
}

// ProfileConfig holds the traveler defaults applied to trips built from
// command-line flags.
type ProfileConfig struct {
	SleepStart     string `toml:"sleep_start"`
	SleepEnd       string `toml:"sleep_end"`
	Sensitivity    string `toml:"sensitivity"`
	CaffeineHabits string `toml:"caffeine_habits"`
	Melatonin      bool   `toml:"melatonin"`
	Cabin          string `toml:"cabin"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"` // empty means <config dir>/jetlagr.db
}

type ReminderConfig struct {
	Enabled     bool `toml:"enabled"`
	LeadMinutes int  `toml:"lead_minutes"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			SleepStart:     "23:00",
			SleepEnd:       "07:00",
			Sensitivity:    string(trip.SensitivityMedium),
			CaffeineHabits: string(trip.CaffeineModerate),
			Melatonin:      false,
			Cabin:          string(trip.CabinEconomy),
		},
		Reminders: ReminderConfig{
			Enabled:     true,
			LeadMinutes: 10,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jetlagr"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file from the default location.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads path, falling back to defaults when it does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JETLAGR_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("JETLAGR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("JETLAGR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("JETLAGR_REMINDER_LEAD_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reminders.LeadMinutes = n
		}
	}
}

// Validate checks the profile defaults so a bad config fails at load
// rather than when a plan is generated.
func (c *Config) Validate() error {
	if !trip.Sensitivity(c.Profile.Sensitivity).Valid() {
		return fmt.Errorf("config: profile.sensitivity %q is not one of low, medium, high", c.Profile.Sensitivity)
	}
	if !trip.CaffeineHabit(c.Profile.CaffeineHabits).Valid() {
		return fmt.Errorf("config: profile.caffeine_habits %q is not one of none, light, moderate, heavy", c.Profile.CaffeineHabits)
	}
	if !trip.CabinType(c.Profile.Cabin).Valid() {
		return fmt.Errorf("config: profile.cabin %q is not one of economy, premium, business, first", c.Profile.Cabin)
	}
	if c.Reminders.LeadMinutes < 0 {
		return fmt.Errorf("config: reminders.lead_minutes must not be negative")
	}
	return nil
}

// DBPath resolves the database location.
func (c *Config) DBPath() (string, error) {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jetlagr.db"), nil
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// WriteDefault writes the default config to path if nothing exists there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	out, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}
