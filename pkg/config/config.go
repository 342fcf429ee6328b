package config

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the toolkit settings.
type Config struct {
	Log         LogConfig         `json:"log" yaml:"log"`
	Diagnostics DiagnosticsConfig `json:"diagnostics" yaml:"diagnostics"`
	Batch       BatchConfig       `json:"batch" yaml:"batch"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// DiagnosticsConfig controls reporting of degenerate geometry.
type DiagnosticsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type BatchConfig struct {
	// Workers bounds concurrent batch queries. Zero means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load decodes YAML from r on top of Default and validates the result.
// An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log encoding %q", c.Log.Encoding)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch workers must not be negative, got %d", c.Batch.Workers)
	}
	return nil
}

// Workers resolves the batch worker count.
func (c *Config) Workers() int {
	if c.Batch.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Batch.Workers
}
