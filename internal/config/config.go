package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level banklar.yaml configuration. It holds
// application plumbing only; ledger settings (rate, threshold, currency) are
// user data and live in the snapshot.
type Config struct {
	DataFile  string          `yaml:"data_file"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SchedulerConfig controls the background interest check cadence.
type SchedulerConfig struct {
	Interval     string `yaml:"interval"`      // Go duration, e.g. "1h"
	InitialDelay string `yaml:"initial_delay"` // Go duration, e.g. "1s"
}

// IntervalDuration parses the recurring check interval.
func (s SchedulerConfig) IntervalDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Interval)
	if err != nil {
		return 0, fmt.Errorf("parsing scheduler interval: %w", err)
	}
	return d, nil
}

// InitialDelayDuration parses the on-load delay.
func (s SchedulerConfig) InitialDelayDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.InitialDelay)
	if err != nil {
		return 0, fmt.Errorf("parsing scheduler initial delay: %w", err)
	}
	return d, nil
}

// Load reads a banklar.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		DataFile: "banklar.json",
		Log:      LogConfig{Level: "info"},
		Scheduler: SchedulerConfig{
			Interval:     "1h",
			InitialDelay: "1s",
		},
	}
}

// LoadOrDefault reads path if it exists, otherwise returns Default.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
