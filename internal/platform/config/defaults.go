package config

const (
	defaultServerPort = 8080

	defaultFanoutWorkers = 8
	defaultMaxBatch      = 100

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 5
)

// defaults returns the lowest configuration layer. Every key that env vars
// may override must appear here so buildEnvLookup can resolve it.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"catalog.source":         SourceFile,
		"catalog.path":           "configs/catalog.yaml",
		"catalog.watch":          false,
		"catalog.fanout_workers": defaultFanoutWorkers,
		"catalog.max_batch":      defaultMaxBatch,

		"client.base_url":                        "http://localhost:8081",
		"client.path":                            "/catalog",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "action-builder",
	}
}
