package config

const (
	defaultServerPort = 8080

	defaultDBMaxConns = 10
	defaultDBMinConns = 1

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultWorkerMaxBlocking = 8

	defaultLimitMemory     = 3 << 30
	defaultLimitTargets    = 10
	defaultLimitMaxLogSize = 100 << 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.dsn":                             "",
		"database.max_conns":                       defaultDBMaxConns,
		"database.min_conns":                       defaultDBMinConns,
		"database.max_conn_lifetime":               "1h",
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"worker.max_blocking": defaultWorkerMaxBlocking,

		"health.timeout": "2s",

		"site.base_url":         "https://docs.rs",
		"site.about_source_url": "https://github.com/rust-lang/docs.rs/tree/master/templates/core/about",

		"builds.limits.memory":       defaultLimitMemory,
		"builds.limits.timeout":      "15m",
		"builds.limits.targets":      defaultLimitTargets,
		"builds.limits.networking":   false,
		"builds.limits.max_log_size": defaultLimitMaxLogSize,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "cratedocs-web",
	}
}
