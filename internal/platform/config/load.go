package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// legacyEnv maps the unprefixed variable names older deployments set onto
// configuration keys.
var legacyEnv = map[string]string{
	"CLIENT_ID":                "credentials.twitch.client_id",
	"CLIENT_SECRET":            "credentials.twitch.client_secret",
	"ACCESS_TOKEN":             "credentials.igdb.access_token",
	"RAWG_API_KEY":             "credentials.rawg.api_key",
	"NEXT_PUBLIC_RAWG_API_KEY": "credentials.rawg.api_key",
	"NEXT_PUBLIC_API_URL":      "api.base_url",
}

// Option adjusts Load.
type Option func(*loader)

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

type loader struct {
	k   *koanf.Koanf
	dir string
}

// Load builds the configuration for profile. Later layers win:
//
//	defaults
//	<dir>/base.yaml
//	<dir>/<profile>.yaml
//	legacy variables (CLIENT_ID, RAWG_API_KEY, ...)
//	APP_ variables
//
// An APP_ variable is matched against the keys already loaded, so
// APP_SERVER_READ_TIMEOUT sets server.read_timeout and
// APP_UPSTREAMS_IGDB_RETRY_MAX_ATTEMPTS sets upstreams.igdb.retry.max_attempts.
//
// No credential is required. credentials.igdb.client_id falls back to the
// Twitch client id.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{k: koanf.New("."), dir: defaultConfigDir}
	for _, opt := range opts {
		opt(l)
	}

	for _, layer := range []func() error{
		l.defaults,
		func() error { return l.yaml("base.yaml") },
		func() error { return l.yaml(profile + ".yaml") },
		l.legacyEnv,
		l.prefixedEnv,
	} {
		if err := layer(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if strings.TrimSpace(cfg.Credentials.IGDB.ClientID) == "" {
		cfg.Credentials.IGDB.ClientID = cfg.Credentials.Twitch.ClientID
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// defaults seeds every known key so the APP_ layer can resolve names.
func (l *loader) defaults() error {
	for key, value := range defaults() {
		if err := l.k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) yaml(name string) error {
	path := filepath.Join(l.dir, name)
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (l *loader) legacyEnv() error {
	if err := l.k.Load(env.Provider(".", env.Opt{TransformFunc: legacyKey}), nil); err != nil {
		return fmt.Errorf("loading legacy env vars: %w", err)
	}
	return nil
}

func (l *loader) prefixedEnv() error {
	known := make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	transform := func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := known[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
	if err := l.k.Load(env.Provider(".", env.Opt{Prefix: envPrefix, TransformFunc: transform}), nil); err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// legacyKey returns the key for a legacy variable, or "" to skip it. An
// empty value is skipped too.
func legacyKey(name, value string) (string, any) {
	key, ok := legacyEnv[name]
	if !ok || value == "" {
		return "", nil
	}

	switch name {
	case "NEXT_PUBLIC_RAWG_API_KEY":
		if os.Getenv("RAWG_API_KEY") != "" {
			return "", nil
		}
	case "NEXT_PUBLIC_API_URL":
		// The public URL is the site root; the gateway is mounted at /api.
		value = strings.TrimRight(value, "/") + "/api"
	}
	return key, value
}

func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("invalid profile name %q", profile)
	}
	return nil
}
