// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
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
	"fmt"
	"time"

	"github.com/NVIDIA/logq/pkg/defaults"
	"github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/queue"
	"github.com/NVIDIA/logq/pkg/serializer"
)

// Config holds the optional settings that can come from a file. The log
// file path and default level are always given on the command line.
type Config struct {
	// Queue configures the entry queue.
	Queue QueueConfig `json:"queue" yaml:"queue"`

	// Server configures the optional HTTP surface.
	Server ServerConfig `json:"server" yaml:"server"`

	// LogLevel is the level of logq's own diagnostics (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

// QueueConfig configures the entry queue.
type QueueConfig struct {
	// Capacity bounds the queue; 0 means unbounded.
	Capacity int `json:"capacity" yaml:"capacity"`

	// Overflow is block, reject or drop-oldest.
	Overflow string `json:"overflow" yaml:"overflow"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	// Listen is host:port; empty disables the server.
	Listen string `json:"listen" yaml:"listen"`

	// RateLimit is requests per second.
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`

	// RateLimitBurst is the token bucket size.
	RateLimitBurst int `json:"rateLimitBurst" yaml:"rateLimitBurst"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
}

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Queue: QueueConfig{
			Capacity: defaults.QueueCapacity,
			Overflow: defaults.QueueOverflow,
		},
		Server: ServerConfig{
			RateLimit:       defaults.ServerRateLimit,
			RateLimitBurst:  defaults.ServerRateLimitBurst,
			ShutdownTimeout: Duration{defaults.ServerShutdownTimeout},
		},
		LogLevel: "info",
	}
}

// Load reads a YAML or JSON file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	r, err := serializer.NewFileReaderAuto(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIOFailure,
			"failed to open config file", err, map[string]any{"path": path})
	}
	defer func() { _ = r.Close() }()

	if err := r.Deserialize(cfg); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to parse config file", err, map[string]any{"path": path})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Queue.Capacity < 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"queue capacity must not be negative", map[string]any{"capacity": c.Queue.Capacity})
	}
	if _, err := queue.ParseOverflow(c.Queue.Overflow); err != nil {
		return err
	}
	if c.Server.RateLimit <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"server rate limit must be positive", map[string]any{"rateLimit": c.Server.RateLimit})
	}
	if c.Server.RateLimitBurst < 1 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"server rate limit burst must be at least 1", map[string]any{"rateLimitBurst": c.Server.RateLimitBurst})
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"server shutdown timeout must be positive",
			map[string]any{"shutdownTimeout": c.Server.ShutdownTimeout.String()})
	}
	return nil
}

// QueueOptions converts the queue section to queue options. Call Validate first.
func (c *Config) QueueOptions() []queue.Option {
	overflow, err := queue.ParseOverflow(c.Queue.Overflow)
	if err != nil {
		overflow = queue.OverflowBlock
	}
	return []queue.Option{
		queue.WithCapacity(c.Queue.Capacity),
		queue.WithOverflow(overflow),
	}
}
