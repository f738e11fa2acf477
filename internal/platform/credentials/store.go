// Package credentials resolves the upstream secrets each outbound call needs.
//
// A Store is built once from configuration and never mutated, so concurrent
// Resolve calls need no locking. Resolution performs no I/O: a missing value
// is a deploy-time misconfiguration reported as *domain.MissingCredentialError.
package credentials

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/platform/config"
)

// Kind names a credential set.
type Kind string

// Credential kinds, one per upstream.
const (
	KindTwitch Kind = "twitch"
	KindIGDB   Kind = "igdb"
	KindRAWG   Kind = "rawg"
)

// Set is the resolved secret material for one Kind. Only the fields that
// belong to the kind are populated.
type Set struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	APIKey       string
}

// Store resolves credential sets from an immutable snapshot of the
// credentials configuration.
type Store struct {
	cfg config.CredentialsConfig
}

// NewStore returns a Store over a copy of cfg.
func NewStore(cfg config.CredentialsConfig) *Store {
	return &Store{cfg: cfg}
}

// Resolve returns the credential set for kind. It fails with a
// *domain.MissingCredentialError naming the first absent or blank value.
func (s *Store) Resolve(kind Kind) (Set, error) {
	switch kind {
	case KindTwitch:
		id, err := require("twitch.client_id", s.cfg.Twitch.ClientID)
		if err != nil {
			return Set{}, err
		}
		secret, err := require("twitch.client_secret", s.cfg.Twitch.ClientSecret)
		if err != nil {
			return Set{}, err
		}
		return Set{ClientID: id, ClientSecret: secret}, nil

	case KindIGDB:
		id, err := require("igdb.client_id", s.cfg.IGDB.ClientID)
		if err != nil {
			return Set{}, err
		}
		token, err := require("igdb.access_token", s.cfg.IGDB.AccessToken)
		if err != nil {
			return Set{}, err
		}
		return Set{ClientID: id, AccessToken: token}, nil

	case KindRAWG:
		key, err := require("rawg.api_key", s.cfg.RAWG.APIKey)
		if err != nil {
			return Set{}, err
		}
		return Set{APIKey: key}, nil

	default:
		return Set{}, fmt.Errorf("unknown credential kind %q: %w", kind, domain.ErrValidation)
	}
}

func require(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &domain.MissingCredentialError{Key: key}
	}
	return value, nil
}
