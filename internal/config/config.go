// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/galleria/internal/tour"
)

// Config is the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server" json:"server"`
	Database DatabaseConfig `koanf:"database" json:"database"`
	Breaker  BreakerConfig  `koanf:"breaker" json:"breaker"`
	Security SecurityConfig `koanf:"security" json:"security"`
	Cache    CacheConfig    `koanf:"cache" json:"cache"`
	Warm     WarmConfig     `koanf:"warm" json:"warm"`
	Logging  LoggingConfig  `koanf:"logging" json:"logging"`
	Tour     tour.Config    `koanf:"tour" json:"-" validate:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" json:"host"`
	Port            int           `koanf:"port" json:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" json:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" json:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" json:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" json:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" json:"environment" validate:"oneof=development staging production"`
}

// DatabaseConfig holds DuckDB settings. An empty Path opens an in-memory
// database.
type DatabaseConfig struct {
	Path      string `koanf:"path" json:"path"`
	MaxMemory string `koanf:"max_memory" json:"max_memory"`
	Threads   int    `koanf:"threads" json:"threads" validate:"gte=0"` // 0 means NumCPU

	// SeedFile is a JSON dataset imported at startup when set.
	SeedFile string `koanf:"seed_file" json:"seed_file"`
}

// BreakerConfig tunes the circuit breaker around catalog reads.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled" json:"enabled"`

	// MaxRequests may pass while half-open.
	MaxRequests uint32 `koanf:"max_requests" json:"max_requests" validate:"min=1"`

	// Interval clears counts while closed.
	Interval time.Duration `koanf:"interval" json:"interval" validate:"gte=0"`

	// Timeout is how long the breaker stays open.
	Timeout time.Duration `koanf:"timeout" json:"timeout" validate:"gt=0"`

	// The breaker opens once MinRequests have been seen and the failure
	// ratio reaches FailureRatio.
	MinRequests  uint32  `koanf:"min_requests" json:"min_requests" validate:"min=1"`
	FailureRatio float64 `koanf:"failure_ratio" json:"failure_ratio" validate:"gt=0,lte=1"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins" json:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" json:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" json:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled" json:"rate_limit_disabled"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes" json:"max_body_bytes" validate:"min=1024"`
}

// CacheConfig sizes the building graph cache.
type CacheConfig struct {
	GraphTTL  time.Duration `koanf:"graph_ttl" json:"graph_ttl" validate:"gt=0"`
	MaxGraphs int           `koanf:"max_graphs" json:"max_graphs" validate:"min=1"`
}

// WarmConfig drives the background graph warm-up service.
type WarmConfig struct {
	Enabled   bool          `koanf:"enabled" json:"enabled"`
	Interval  time.Duration `koanf:"interval" json:"interval" validate:"gt=0"`
	Buildings []string      `koanf:"buildings" json:"buildings" validate:"dive,building_id"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" json:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" json:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller" json:"caller"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
