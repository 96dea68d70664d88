// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds settings for the bookscan command line.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// PoolSize is the number of books searched concurrently.
	// Zero means one worker per two CPUs.
	PoolSize int `yaml:"pool_size"`

	// Compact disables indentation of JSON output.
	Compact bool `yaml:"compact"`

	// Metrics writes search metrics to stderr after each search.
	Metrics bool `yaml:"metrics"`

	// Progress writes per-book search progress to stderr.
	Progress bool `yaml:"progress"`
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithLogLevel sets the log level name.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithPoolSize sets the search worker pool size.
func WithPoolSize(size int) Option {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithCompact toggles compact JSON output.
func WithCompact(compact bool) Option {
	return func(c *Config) {
		c.Compact = compact
	}
}

// WithMetrics toggles metrics output.
func WithMetrics(metrics bool) Option {
	return func(c *Config) {
		c.Metrics = metrics
	}
}

// WithProgress toggles progress output.
func WithProgress(progress bool) Option {
	return func(c *Config) {
		c.Progress = progress
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	cfg.Apply(opts...)
	return cfg
}

// Apply applies opts to c.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Load reads a YAML file over the default values.
// Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize puts the configuration in canonical form.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that the configuration is usable.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log level %q must be one of %s",
			ErrInvalidConfig, c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: pool size must not be negative", ErrInvalidConfig)
	}
	return nil
}
