package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	logLevels       = []string{"debug", "info", "warn", "error"}
	logFormats      = []string{"json", "text"}
	secretProviders = []string{"config", "vault"}
	exporters       = []string{"stdout", "otlp"}
)

// Validate reports every invalid setting, joined into one error.
// Credentials are not checked; a missing secret only fails the requests
// that need it.
func (c *Config) Validate() error {
	var p problems

	p.check(c.Server.Port >= 1 && c.Server.Port <= 65535,
		"server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	p.client("upstreams.igdb", &c.Upstreams.IGDB)
	p.client("upstreams.rawg", &c.Upstreams.RAWG)
	p.client("upstreams.twitch", &c.Upstreams.Twitch)
	p.client("api", &c.API)

	p.oneOf("secrets.provider", c.Secrets.Provider, secretProviders)
	if c.Secrets.Provider == "vault" {
		v := c.Secrets.Vault
		p.check(v.Address != "", "secrets.vault.address is required for the vault provider")
		p.check(v.Mount != "", "secrets.vault.mount is required for the vault provider")
		p.check(v.Path != "", "secrets.vault.path is required for the vault provider")
	}

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.check(t.Exporter != "otlp" || t.Endpoint != "",
			"telemetry.endpoint is required for the otlp exporter")
	}

	return errors.Join(p...)
}

type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got),
		"%s must be one of %s, got %q", key, strings.Join(allowed, ", "), got)
}

func (p *problems) client(key string, cl *ClientConfig) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && u.Scheme != "" && u.Host != "",
		"%s.base_url must be an absolute URL, got %q", key, cl.BaseURL)
	p.check(cl.Timeout > 0, "%s.timeout must be positive", key)
	p.check(cl.Retry.MaxAttempts >= 1,
		"%s.retry.max_attempts must be at least 1, got %d", key, cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0,
		"%s.retry.multiplier must be positive, got %g", key, cl.Retry.Multiplier)
	p.check(!cl.CircuitBreaker.Enabled || cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be at least 1, got %d", key, cl.CircuitBreaker.MaxFailures)
}
