package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
)

// IGDBClient defines the client port for the IGDB query API.
// Implemented by the ACL adapter; called by the application layer.
type IGDBClient interface {
	// QueryGames translates q into the IGDB query DSL, posts it to the games
	// endpoint, and returns the upstream JSON array unchanged.
	// Returns *domain.MissingCredentialError before any network call when
	// IGDB credentials are absent, and *domain.UpstreamError on transport
	// failure or a non-2xx status.
	QueryGames(ctx context.Context, q game.Query) (json.RawMessage, error)
}

// RAWGClient defines the client port for the RAWG REST catalog.
type RAWGClient interface {
	// Get issues a GET for endpoint (a path relative to the RAWG base URL,
	// optionally with a query string) with the configured API key attached,
	// and returns the upstream JSON body unchanged.
	Get(ctx context.Context, endpoint string) (json.RawMessage, error)
}

// TokenIssuer defines the client port for the Twitch identity provider.
type TokenIssuer interface {
	// IssueToken performs one client-credentials exchange and returns the
	// new token. Every call mints a fresh token.
	// Returns *domain.MissingCredentialError without a network call when
	// Twitch credentials are absent, and *domain.ProviderRejectedError when
	// the provider refuses or cannot be reached.
	IssueToken(ctx context.Context) (*domain.AccessToken, error)
}
