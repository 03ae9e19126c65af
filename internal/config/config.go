package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"BoatHire/internal/ledger"
)

// Config holds all application configuration.
type Config struct {
	Fleet struct {
		Size        int `yaml:"size"`
		OpeningHour int `yaml:"opening_hour"`
		ClosingHour int `yaml:"closing_hour"`
	} `yaml:"fleet"`
	Pricing struct {
		HourlyRate   float64 `yaml:"hourly_rate"`
		HalfHourRate float64 `yaml:"half_hour_rate"`
	} `yaml:"pricing"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
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
	if err := overrideInt("BOATHIRE_FLEET_SIZE", &cfg.Fleet.Size); err != nil {
		return nil, err
	}
	if err := overrideInt("BOATHIRE_OPENING_HOUR", &cfg.Fleet.OpeningHour); err != nil {
		return nil, err
	}
	if err := overrideInt("BOATHIRE_CLOSING_HOUR", &cfg.Fleet.ClosingHour); err != nil {
		return nil, err
	}
	if err := overrideFloat("BOATHIRE_HOURLY_RATE", &cfg.Pricing.HourlyRate); err != nil {
		return nil, err
	}
	if err := overrideFloat("BOATHIRE_HALF_HOUR_RATE", &cfg.Pricing.HalfHourRate); err != nil {
		return nil, err
	}
	if v := os.Getenv("BOATHIRE_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	def := ledger.DefaultRules()
	if cfg.Fleet.Size == 0 {
		cfg.Fleet.Size = def.FleetSize
	}
	if cfg.Fleet.OpeningHour == 0 {
		cfg.Fleet.OpeningHour = def.OpeningHour
	}
	if cfg.Fleet.ClosingHour == 0 {
		cfg.Fleet.ClosingHour = def.ClosingHour
	}
	if cfg.Pricing.HourlyRate == 0 {
		cfg.Pricing.HourlyRate = def.HourlyRate
	}
	if cfg.Pricing.HalfHourRate == 0 {
		cfg.Pricing.HalfHourRate = def.HalfHourRate
	}

	return cfg, nil
}

// Rules converts the fleet and pricing sections into ledger rules.
func (c *Config) Rules() ledger.Rules {
	return ledger.Rules{
		FleetSize:    c.Fleet.Size,
		OpeningHour:  c.Fleet.OpeningHour,
		ClosingHour:  c.Fleet.ClosingHour,
		HourlyRate:   c.Pricing.HourlyRate,
		HalfHourRate: c.Pricing.HalfHourRate,
	}
}

// Validate checks that the configured day is usable.
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("fleet: %w", err)
	}
	return nil
}

func overrideInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func overrideFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var f float64
	if _, err := fmt.Sscanf(v, "%f", &f); err != nil {
		return fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	*dst = f
	return nil
}
