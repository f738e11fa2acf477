package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// Upstream base URLs.
const (
	defaultIGDBBaseURL   = "https://api.igdb.com/v4"
	defaultRAWGBaseURL   = "https://api.rawg.io/api"
	defaultTwitchBaseURL = "https://id.twitch.tv"
	defaultAPIBaseURL    = "http://localhost:8080/api"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "35s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"credentials.twitch.client_id":     "",
		"credentials.twitch.client_secret": "",
		"credentials.igdb.client_id":       "",
		"credentials.igdb.access_token":    "",
		"credentials.rawg.api_key":         "",

		"secrets.provider":      "config",
		"secrets.vault.address": "",
		"secrets.vault.token":   "",
		"secrets.vault.mount":   "secret",
		"secrets.vault.path":    "continuum",
		"secrets.vault.timeout": "10s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "continuum",
	}

	clientDefaults(d, "upstreams.igdb", defaultIGDBBaseURL)
	clientDefaults(d, "upstreams.rawg", defaultRAWGBaseURL)
	clientDefaults(d, "upstreams.twitch", defaultTwitchBaseURL)
	clientDefaults(d, "api", defaultAPIBaseURL)

	return d
}

// clientDefaults fills the ClientConfig keys under prefix. Every client uses
// a 30s timeout, a single attempt and no circuit breaker.
func clientDefaults(d map[string]any, prefix, baseURL string) {
	d[prefix+".base_url"] = baseURL
	d[prefix+".timeout"] = "30s"
	d[prefix+".retry.max_attempts"] = defaultRetryMaxAttempts
	d[prefix+".retry.initial_interval"] = "100ms"
	d[prefix+".retry.max_interval"] = "10s"
	d[prefix+".retry.multiplier"] = defaultRetryMultiplier
	d[prefix+".circuit_breaker.enabled"] = false
	d[prefix+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
	d[prefix+".circuit_breaker.timeout"] = "30s"
	d[prefix+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
}
