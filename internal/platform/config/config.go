// Package config loads the gateway configuration from layered koanf sources
// (see Load) and validates it.
package config

import "time"

// Config is the root of the gateway configuration tree.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Upstreams   UpstreamsConfig   `koanf:"upstreams"`
	API         ClientConfig      `koanf:"api"`
	Credentials CredentialsConfig `koanf:"credentials"`
	Secrets     SecretsConfig     `koanf:"secrets"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// ServerConfig configures the inbound listener. WriteTimeout also bounds
// each request through the timeout middleware.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// UpstreamsConfig holds one outbound client configuration per upstream:
// the IGDB query API, the RAWG REST catalog, and the Twitch identity provider.
type UpstreamsConfig struct {
	IGDB   ClientConfig `koanf:"igdb"`
	RAWG   ClientConfig `koanf:"rawg"`
	Twitch ClientConfig `koanf:"twitch"`
}

// ClientConfig configures one outbound httpclient.Client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RetryConfig sets exponential backoff for 429 and 5xx answers. A
// MaxAttempts of 1 means no retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failures and
// lets HalfOpenLimit probes through once Timeout has passed. A disabled
// breaker never trips, so every call reaches the upstream.
type CircuitBreakerConfig struct {
	Enabled       bool          `koanf:"enabled"`
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// CredentialsConfig holds the statically configured upstream secrets. Every
// value is optional at load time; absence only fails the call path that
// needs it.
type CredentialsConfig struct {
	Twitch TwitchCredentials `koanf:"twitch"`
	IGDB   IGDBCredentials   `koanf:"igdb"`
	RAWG   RAWGCredentials   `koanf:"rawg"`
}

// TwitchCredentials are the application credentials for the client
// credentials grant.
type TwitchCredentials struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
}

// IGDBCredentials authenticate calls to the IGDB query API. ClientID
// defaults to the Twitch client id when unset.
type IGDBCredentials struct {
	ClientID    string `koanf:"client_id"`
	AccessToken string `koanf:"access_token"`
}

// RAWGCredentials authenticate calls to the RAWG catalog.
type RAWGCredentials struct {
	APIKey string `koanf:"api_key"`
}

// SecretsConfig selects where credentials come from. Provider "config" uses
// the values above as loaded; "vault" overlays a Vault KV v2 secret on top
// of them at start-up.
type SecretsConfig struct {
	Provider string      `koanf:"provider"`
	Vault    VaultConfig `koanf:"vault"`
}

// VaultConfig locates the KV v2 secret holding upstream credentials.
type VaultConfig struct {
	Address string        `koanf:"address"`
	Token   string        `koanf:"token"`
	Mount   string        `koanf:"mount"`
	Path    string        `koanf:"path"`
	Timeout time.Duration `koanf:"timeout"`
}

// TelemetryConfig selects the OpenTelemetry exporter. Nothing is exported
// unless Enabled.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
