package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/continuum/internal/platform/httpclient"
	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RAWGClient    = (*RAWGClient)(nil)
	_ ports.HealthChecker = (*RAWGClient)(nil)
)

// RAWGClient is the outbound adapter for the RAWG REST catalog. The
// [RAWGAPIKey] hook attaches the API key to every call.
type RAWGClient struct {
	req *Requester
}

// NewRAWGClient creates a RAWGClient that sends requests through client.
// The client's BaseURL should be the RAWG API root
// (e.g. "https://api.rawg.io/api").
func NewRAWGClient(
	client *httpclient.Client,
	store CredentialResolver,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *RAWGClient {
	return &RAWGClient{
		req: NewRequester(client, logger, RAWGAPIKey(store), ClassifyResponse(client.Name(), logger, metrics)),
	}
}

// Get fetches GET <base>/<endpoint>. The endpoint may include a query
// string; a leading slash is optional.
func (c *RAWGClient) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.req.Do(ctx, http.MethodGet, "/"+strings.TrimPrefix(endpoint, "/"), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *RAWGClient) Name() string {
	return "rawg"
}

// HealthCheck reports RAWG availability from the circuit breaker state.
func (c *RAWGClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
