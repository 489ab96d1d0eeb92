// Package config defines the generation parameters. Defaults are compile-time
// constants; an optional YAML file can override them for experiments.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceRatios are the target shares of each event category in the corpus.
// Crash events are additionally governed by the crash-probability model, so
// the crash ratio here is the expected share, not a hard quota.
type SourceRatios struct {
	Analytics   float64 `yaml:"analytics"`
	Performance float64 `yaml:"performance"`
	Crash       float64 `yaml:"crash"`
}

// Config holds all generation parameters.
type Config struct {
	TotalEventsTarget   int          `yaml:"total_events_target"`
	DateRangeDays       int          `yaml:"date_range_days"`
	SessionsPerDay      int          `yaml:"sessions_per_day"`
	AvgEventsPerSession float64      `yaml:"avg_events_per_session"`
	SourceRatios        SourceRatios `yaml:"source_ratios"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		TotalEventsTarget:   50000,
		DateRangeDays:       30,
		SessionsPerDay:      450,
		AvgEventsPerSession: 5.2,
		SourceRatios: SourceRatios{
			Analytics:   0.60,
			Performance: 0.395,
			Crash:       0.005,
		},
	}
}

// Load reads a YAML override file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the parameters are usable.
func (c Config) Validate() error {
	if c.TotalEventsTarget <= 0 {
		return fmt.Errorf("total_events_target must be positive, got %d", c.TotalEventsTarget)
	}
	if c.DateRangeDays <= 0 {
		return fmt.Errorf("date_range_days must be positive, got %d", c.DateRangeDays)
	}
	if c.SessionsPerDay <= 0 {
		return fmt.Errorf("sessions_per_day must be positive, got %d", c.SessionsPerDay)
	}
	if c.AvgEventsPerSession < 2 {
		return fmt.Errorf("avg_events_per_session must be at least 2, got %g", c.AvgEventsPerSession)
	}
	sum := c.SourceRatios.Analytics + c.SourceRatios.Performance + c.SourceRatios.Crash
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("source ratios must sum to 1.0, got %g", sum)
	}
	return nil
}
