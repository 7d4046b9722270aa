/*
 * MIT License
 *
 * Copyright (c) 2025 Vesper Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config loads the runtime's YAML configuration: system-wide
// defaults plus per-group policy overrides that are pushed into the
// groups' permission stores.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/vesperhq/vesper/actor"
	"github.com/vesperhq/vesper/log"
	"github.com/vesperhq/vesper/permission"
)

var (
	// ErrInvalidLogLevel is returned when a logging level string is not one
	// of debug, info, warn, error, panic or fatal.
	ErrInvalidLogLevel = errors.New("config: invalid logging level")
	// ErrInvalidLoggingRate is returned for a non-positive logging rate.
	ErrInvalidLoggingRate = errors.New("config: logging rate must be positive")
	// ErrInvalidPollInterval is returned for a non-positive poll interval.
	ErrInvalidPollInterval = errors.New("config: poll interval must be positive")
)

// Duration decodes YAML scalars like "25ms" or "1m30s" through
// time.ParseDuration.
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: parse duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// Logging configures the logging policy of the system or one group.
type Logging struct {
	// Level is the minimum emitted level.
	Level string `yaml:"level"`
	// Rate caps emitted records per second. Zero means the system default.
	Rate float64 `yaml:"rate"`
	// Burst is the rate limiter burst size. Zero means the system default.
	Burst int `yaml:"burst"`
}

// Telemetry configures telemetry sampling for one group. Pointer fields
// distinguish "absent, keep the default" from an explicit false.
type Telemetry struct {
	PerGroup *bool `yaml:"perGroup"`
	PerKey   *bool `yaml:"perKey"`
}

// Group is the per-group policy override section.
type Group struct {
	Logging   *Logging  `yaml:"logging"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Config is the root of the YAML document.
type Config struct {
	// Name is the system name; it seeds the node number embedded in
	// addresses and trace ids.
	Name string `yaml:"name"`
	// PollInterval is how often parked receive loops re-poll attached
	// sources. Zero means the system default.
	PollInterval Duration `yaml:"pollInterval"`
	// Logging is the system-wide logging policy.
	Logging Logging `yaml:"logging"`
	// Groups maps group names to policy overrides.
	Groups map[string]Group `yaml:"groups"`
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every section of the configuration and reports the first
// violation found.
func (c *Config) Validate() error {
	if err := c.Logging.validate(); err != nil {
		return err
	}
	if c.PollInterval.Duration < 0 {
		return ErrInvalidPollInterval
	}
	for name, group := range c.Groups {
		if group.Logging != nil {
			if err := group.Logging.validate(); err != nil {
				return fmt.Errorf("group %s: %w", name, err)
			}
		}
	}
	return nil
}

func (l *Logging) validate() error {
	if l.Level != "" && log.ParseLevel(l.Level) == log.InvalidLevel {
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, l.Level)
	}
	if l.Rate < 0 {
		return ErrInvalidLoggingRate
	}
	return nil
}

// Options converts the system-wide settings into actor system options.
// Settings absent from the document contribute nothing, leaving the system
// defaults in force.
func (c *Config) Options() []actor.Option {
	var opts []actor.Option
	if c.PollInterval.Duration > 0 {
		opts = append(opts, actor.WithPollInterval(c.PollInterval.Duration))
	}
	if c.Logging.Rate > 0 {
		burst := c.Logging.Burst
		if burst <= 0 {
			burst = int(c.Logging.Rate)
		}
		opts = append(opts, actor.WithLoggingRate(rate.Limit(c.Logging.Rate), burst))
	}
	return opts
}

// Apply pushes the policy of the named group into the given permission
// store: the effective minimum logging level (group override, or the
// system-wide one) and any explicit telemetry flags. Settings absent from
// the document leave the store untouched.
func (c *Config) Apply(groupName string, store *permission.Store) {
	logging := c.Logging
	var telemetry Telemetry
	if group, ok := c.Groups[groupName]; ok {
		if group.Logging != nil {
			logging = *group.Logging
		}
		telemetry = group.Telemetry
	}

	if logging.Level != "" {
		store.SetLoggingMinLevel(log.ParseLevel(logging.Level))
	}
	if telemetry.PerGroup != nil {
		store.SetTelemetryPerActorGroup(*telemetry.PerGroup)
	}
	if telemetry.PerKey != nil {
		store.SetTelemetryPerActorKey(*telemetry.PerKey)
	}
}
