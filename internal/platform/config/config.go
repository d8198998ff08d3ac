// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Worker    WorkerConfig    `koanf:"worker"`
	Health    HealthConfig    `koanf:"health"`
	Site      SiteConfig      `koanf:"site"`
	Builds    BuildsConfig    `koanf:"builds"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds the Postgres pool settings. An empty DSN selects the
// in-memory store, which is only meant for local development.
type DatabaseConfig struct {
	DSN             string               `koanf:"dsn"`
	MaxConns        int32                `koanf:"max_conns"`
	MinConns        int32                `koanf:"min_conns"`
	MaxConnLifetime time.Duration        `koanf:"max_conn_lifetime"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// WorkerConfig sizes the pool that runs blocking storage calls off the
// request path.
type WorkerConfig struct {
	MaxBlocking int `koanf:"max_blocking"`
}

// HealthConfig holds readiness probe settings.
type HealthConfig struct {
	// Timeout bounds each dependency check.
	Timeout time.Duration `koanf:"timeout"`
}

// SiteConfig holds public site settings used when rendering pages.
type SiteConfig struct {
	BaseURL        string `koanf:"base_url"`
	AboutSourceURL string `koanf:"about_source_url"`
}

// BuildsConfig holds the documentation build settings shown on the builds page.
type BuildsConfig struct {
	Limits LimitsConfig `koanf:"limits"`
}

// LimitsConfig holds the default build limits.
type LimitsConfig struct {
	Memory     int64         `koanf:"memory"`
	Timeout    time.Duration `koanf:"timeout"`
	Targets    int           `koanf:"targets"`
	Networking bool          `koanf:"networking"`
	MaxLogSize int64         `koanf:"max_log_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
