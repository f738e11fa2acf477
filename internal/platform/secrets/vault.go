// Package secrets overlays upstream credentials from an external secret
// backend onto the loaded configuration. The only backend is a HashiCorp
// Vault KV v2 secret, read once at start-up.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"

	"github.com/jsamuelsen11/continuum/internal/platform/config"
)

// ErrSecretNotFound is returned when the configured secret path holds no data.
var ErrSecretNotFound = errors.New("secret not found")

// Field names read from the Vault secret. They match the credential key
// names reported by credentials.Store.
const (
	fieldTwitchClientID     = "twitch.client_id"
	fieldTwitchClientSecret = "twitch.client_secret"
	fieldIGDBClientID       = "igdb.client_id"
	fieldIGDBAccessToken    = "igdb.access_token"
	fieldRAWGAPIKey         = "rawg.api_key"
)

// VaultLoader reads a KV v2 secret.
type VaultLoader struct {
	client *vaultapi.Client
	mount  string
	path   string
}

// NewVaultLoader creates a Vault API client for cfg. No request is made
// until Load is called.
func NewVaultLoader(cfg config.VaultConfig) (*VaultLoader, error) {
	apiCfg := vaultapi.DefaultConfig()
	if apiCfg.Error != nil {
		return nil, fmt.Errorf("vault config: %w", apiCfg.Error)
	}

	apiCfg.Address = cfg.Address
	if cfg.Timeout > 0 {
		apiCfg.Timeout = cfg.Timeout
	}

	client, err := vaultapi.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("creating vault client: %w", err)
	}

	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	return &VaultLoader{
		client: client,
		mount:  strings.Trim(cfg.Mount, "/"),
		path:   strings.Trim(cfg.Path, "/"),
	}, nil
}

// Load returns the string fields of the secret. Non-string values are skipped.
func (l *VaultLoader) Load(ctx context.Context) (map[string]string, error) {
	fullPath := fmt.Sprintf("%s/data/%s", l.mount, l.path)

	secret, err := l.client.Logical().ReadWithContext(ctx, fullPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fullPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("%s: %w", fullPath, ErrSecretNotFound)
	}

	// KV v2 nests the payload under "data"; a soft-deleted secret has data: null.
	raw, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", fullPath, ErrSecretNotFound)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}

	return out, nil
}

// Overlay returns creds with every non-blank value from data applied on top.
// An IGDB client id that is still empty afterwards takes the Twitch one.
func Overlay(creds config.CredentialsConfig, data map[string]string) config.CredentialsConfig {
	set := func(dst *string, field string) {
		if v := strings.TrimSpace(data[field]); v != "" {
			*dst = v
		}
	}

	set(&creds.Twitch.ClientID, fieldTwitchClientID)
	set(&creds.Twitch.ClientSecret, fieldTwitchClientSecret)
	set(&creds.IGDB.ClientID, fieldIGDBClientID)
	set(&creds.IGDB.AccessToken, fieldIGDBAccessToken)
	set(&creds.RAWG.APIKey, fieldRAWGAPIKey)

	if strings.TrimSpace(creds.IGDB.ClientID) == "" {
		creds.IGDB.ClientID = creds.Twitch.ClientID
	}

	return creds
}

// Apply overlays the configured secret backend onto cfg.Credentials. With
// provider "config" it does nothing.
func Apply(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Secrets.Provider != "vault" {
		return nil
	}

	loader, err := NewVaultLoader(cfg.Secrets.Vault)
	if err != nil {
		return err
	}

	data, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	cfg.Credentials = Overlay(cfg.Credentials, data)

	logger.InfoContext(ctx, "credentials loaded from vault",
		slog.String("mount", loader.mount),
		slog.String("path", loader.path),
		slog.Int("fields", len(data)),
	)

	return nil
}
