// Package config handles YAML configuration for ec2model.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	AWS   AWSConfig   `yaml:"aws"`
	Log   LogConfig   `yaml:"log"`
	OTEL  OTELConfig  `yaml:"otel"`
	Watch WatchConfig `yaml:"watch"`
}

// AWSConfig holds AWS client settings.
type AWSConfig struct {
	Region   string `yaml:"region"`
	Profile  string `yaml:"profile"`
	Endpoint string `yaml:"endpoint"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OTELConfig holds OpenTelemetry settings.
type OTELConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	Insecure    bool          `yaml:"insecure"`
	ServiceName string        `yaml:"service_name"`
	Traces      TracesConfig  `yaml:"traces"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

// TracesConfig holds tracing settings.
type TracesConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate float64 `yaml:"sample_rate"`
}

// MetricsConfig holds metrics settings. PrometheusAddr, when set, serves
// the metrics in Prometheus format while a long-running command is up.
type MetricsConfig struct {
	Enabled        bool   `yaml:"enabled"`
	PrometheusAddr string `yaml:"prometheus_addr"`
}

// WatchConfig holds settings for the permission watcher.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
	StateDir string        `yaml:"state_dir"`
	Probes   []ProbeConfig `yaml:"probes"`
}

// ProbeConfig is one dry-run permission check: an operation and the
// parameters used to build its input.
type ProbeConfig struct {
	Name      string            `yaml:"name"`
	Operation string            `yaml:"operation"`
	Params    map[string]string `yaml:"params"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.OTEL.ServiceName == "" {
		cfg.OTEL.ServiceName = "ec2model"
	}
	if cfg.OTEL.Traces.SampleRate == 0 {
		cfg.OTEL.Traces.SampleRate = 1.0
	}
	if cfg.Watch.Interval == 0 {
		cfg.Watch.Interval = 5 * time.Minute
	}
	if cfg.Watch.StateDir == "" {
		cfg.Watch.StateDir = ".ec2model"
	}
	for i := range cfg.Watch.Probes {
		if cfg.Watch.Probes[i].Name == "" {
			cfg.Watch.Probes[i].Name = cfg.Watch.Probes[i].Operation
		}
	}
}

// Validate checks the configuration is valid.
func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return fmt.Errorf("aws: region required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log: unknown format %q", c.Log.Format)
	}
	if c.OTEL.Traces.SampleRate < 0.0 || c.OTEL.Traces.SampleRate > 1.0 {
		return fmt.Errorf("otel: traces.sample_rate must be between 0.0 and 1.0 (got %v)", c.OTEL.Traces.SampleRate)
	}
	if c.Watch.Interval < time.Second {
		return fmt.Errorf("watch: interval must be at least 1s (got %v)", c.Watch.Interval)
	}

	names := make(map[string]bool, len(c.Watch.Probes))
	for i, p := range c.Watch.Probes {
		if p.Operation == "" {
			return fmt.Errorf("watch: probes[%d]: operation required", i)
		}
		if names[p.Name] {
			return fmt.Errorf("watch: probes[%d]: duplicate name %q", i, p.Name)
		}
		names[p.Name] = true
	}
	return nil
}
