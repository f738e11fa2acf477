package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl/igdb"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
	"github.com/jsamuelsen11/continuum/internal/platform/httpclient"
	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.IGDBClient    = (*IGDBClient)(nil)
	_ ports.HealthChecker = (*IGDBClient)(nil)
)

// igdbGamesPath is the games endpoint relative to the IGDB base URL.
const igdbGamesPath = "/games"

// IGDBClient is the outbound adapter for the IGDB query API. Every call is
// authenticated by the [IGDBAuth] hook and classified by [ClassifyResponse].
type IGDBClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewIGDBClient creates an IGDBClient that sends requests through client.
// The client's BaseURL should be the IGDB API root
// (e.g. "https://api.igdb.com/v4").
func NewIGDBClient(
	client *httpclient.Client,
	store CredentialResolver,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *IGDBClient {
	return &IGDBClient{
		req:    NewRequester(client, logger, IGDBAuth(store), ClassifyResponse(client.Name(), logger, metrics)),
		logger: logger,
	}
}

// QueryGames posts the translated query to POST /games and returns the
// response array as received.
func (c *IGDBClient) QueryGames(ctx context.Context, q game.Query) (json.RawMessage, error) {
	query, err := igdb.BuildQuery(q)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "querying igdb",
		slog.String("component", "igdb"),
		slog.String("query", query),
	)

	var raw json.RawMessage
	payload := &Payload{ContentType: "text/plain", Body: []byte(query)}
	if err := c.req.Do(ctx, http.MethodPost, igdbGamesPath, payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *IGDBClient) Name() string {
	return "igdb"
}

// HealthCheck reports IGDB availability from the circuit breaker state; no
// network call is made.
func (c *IGDBClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
