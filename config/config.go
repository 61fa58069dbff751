package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete propdesk configuration
type Config struct {
	Store  StoreConfig  `json:"store" yaml:"store"`
	Report ReportConfig `json:"report" yaml:"report"`
	Payout PayoutConfig `json:"payout" yaml:"payout"`
}

// StoreConfig contains persistence parameters
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ReportConfig contains reporting parameters
type ReportConfig struct {
	// Timezone is the IANA name of the reporting timezone used for daily
	// grouping, e.g. "America/New_York".
	Timezone string `json:"timezone" yaml:"timezone"`
}

// PayoutConfig contains payout accounting parameters
type PayoutConfig struct {
	// Policy selects which payout statuses reduce the tracked balance:
	// "settled" (validated + paid, the default) or "all".
	Policy string `json:"policy" yaml:"policy"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path is required")
	}
	if c.Report.Timezone == "" {
		return fmt.Errorf("report.timezone is required")
	}
	if _, err := time.LoadLocation(c.Report.Timezone); err != nil {
		return fmt.Errorf("report.timezone: %w", err)
	}
	if c.Payout.Policy != "settled" && c.Payout.Policy != "all" {
		return fmt.Errorf("payout.policy must be 'settled' or 'all'")
	}
	return nil
}

// Location resolves the configured reporting timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Report.Timezone)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			DBPath: "./propdesk.sqlite",
		},
		Report: ReportConfig{
			Timezone: "UTC",
		},
		Payout: PayoutConfig{
			Policy: "settled",
		},
	}
}
