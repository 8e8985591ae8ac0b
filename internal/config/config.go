package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Pool struct {
		HourlyTotal float64 `yaml:"hourly_total"`
	} `yaml:"pool"`
	Wave struct {
		DefaultDurationHours float64 `yaml:"default_duration_hours"`
		DefaultMultiplier    float64 `yaml:"default_multiplier"`
		StateFile            string  `yaml:"state_file"`
	} `yaml:"wave"`
	Schedule struct {
		RevealCron  string `yaml:"reveal_cron"`
		SweepCron   string `yaml:"sweep_cron"`
		SummaryCron string `yaml:"summary_cron"`
	} `yaml:"schedule"`
	Database struct {
		Driver      string `yaml:"driver"` // "sqlite", "postgres", or empty for noop
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HOURLY_POOL_TOTAL"); v != "" {
		var total float64
		if _, err := fmt.Sscanf(v, "%f", &total); err == nil {
			cfg.Pool.HourlyTotal = total
		}
	}
	if v := os.Getenv("WAVE_STATE_FILE"); v != "" {
		cfg.Wave.StateFile = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("CRON_REVEAL"); v != "" {
		cfg.Schedule.RevealCron = v
	}

	// Defaults
	if cfg.Pool.HourlyTotal == 0 {
		cfg.Pool.HourlyTotal = 10000
	}
	if cfg.Wave.DefaultDurationHours == 0 {
		cfg.Wave.DefaultDurationHours = 24
	}
	if cfg.Wave.DefaultMultiplier == 0 {
		cfg.Wave.DefaultMultiplier = 1.5
	}
	if cfg.Wave.StateFile == "" {
		cfg.Wave.StateFile = "data/wave_state.json"
	}
	if cfg.Schedule.RevealCron == "" {
		cfg.Schedule.RevealCron = "0 */5 * * * *" // every 5 minutes
	}
	if cfg.Schedule.SweepCron == "" {
		cfg.Schedule.SweepCron = "30 * * * * *" // every minute
	}
	if cfg.Schedule.SummaryCron == "" {
		cfg.Schedule.SummaryCron = "0 0 0 * * *" // midnight
	}
	if cfg.Database.Driver == "" && cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/pointwave.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Pool.HourlyTotal <= 0 {
		return fmt.Errorf("pool.hourly_total must be positive")
	}
	if c.Wave.DefaultDurationHours <= 0 {
		return fmt.Errorf("wave.default_duration_hours must be positive")
	}
	if c.Wave.DefaultMultiplier < 1 {
		return fmt.Errorf("wave.default_multiplier must be >= 1")
	}
	switch c.Database.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.PostgresDSN == "" {
		return fmt.Errorf("database.postgres_dsn is required for the postgres driver")
	}
	return nil
}
