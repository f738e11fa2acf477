package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
)

// CatalogService defines the service port behind the three gateway
// endpoints. Implemented by the application layer; called by handlers.
// Every operation is stateless and forwards upstream payloads verbatim.
type CatalogService interface {
	// SearchIGDB validates q and returns the IGDB games matching it.
	// Returns domain.ErrValidation if q is invalid.
	SearchIGDB(ctx context.Context, q game.Query) (json.RawMessage, error)

	// ForwardRAWG proxies a GET for endpoint to RAWG and returns the body.
	// Returns domain.ErrValidation if endpoint is empty or not a relative path.
	ForwardRAWG(ctx context.Context, endpoint string) (json.RawMessage, error)

	// IssueToken returns a freshly minted Twitch application access token.
	IssueToken(ctx context.Context) (*domain.AccessToken, error)
}
