package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Worker.validate(),
		c.Health.validate(),
		c.Site.validate(),
		c.Builds.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	// The in-memory store has no pool to size.
	if d.DSN == "" {
		return nil
	}

	var errs []error

	if d.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns must be between 0 and max_conns, got %d", d.MinConns))
	}
	if d.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("database.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures))
	}
	if d.CircuitBreaker.Timeout <= 0 {
		errs = append(errs, errors.New("database.circuit_breaker.timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (w *WorkerConfig) validate() error {
	if w.MaxBlocking < 1 {
		return fmt.Errorf("worker.max_blocking must be >= 1, got %d", w.MaxBlocking)
	}
	return nil
}

func (h *HealthConfig) validate() error {
	if h.Timeout <= 0 {
		return errors.New("health.timeout must be positive")
	}
	return nil
}

func (s *SiteConfig) validate() error {
	var errs []error

	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("site.base_url must be an absolute URL, got %q", s.BaseURL))
	}
	if s.AboutSourceURL == "" {
		errs = append(errs, errors.New("site.about_source_url must not be empty"))
	}

	return errors.Join(errs...)
}

func (b *BuildsConfig) validate() error {
	var errs []error

	if b.Limits.Memory <= 0 {
		errs = append(errs, fmt.Errorf("builds.limits.memory must be positive, got %d", b.Limits.Memory))
	}
	if b.Limits.Timeout <= 0 {
		errs = append(errs, errors.New("builds.limits.timeout must be positive"))
	}
	if b.Limits.Targets < 1 {
		errs = append(errs, fmt.Errorf("builds.limits.targets must be >= 1, got %d", b.Limits.Targets))
	}
	if b.Limits.MaxLogSize <= 0 {
		errs = append(errs, fmt.Errorf("builds.limits.max_log_size must be positive, got %d", b.Limits.MaxLogSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
