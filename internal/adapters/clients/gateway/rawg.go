package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl/rawg"
	"github.com/jsamuelsen11/continuum/internal/app/fanout"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
)

// maxConcurrentFetches bounds GetGamesByIDs.
const maxConcurrentFetches = 4

// RAWGService calls GET /rawg on the gateway.
type RAWGService struct {
	req *acl.Requester
}

// GetGames lists games matching params. A nil params lists without filters.
func (s *RAWGService) GetGames(ctx context.Context, params *rawg.GameListParams) (*game.RAWGListResponse, error) {
	var resp game.RAWGListResponse
	if err := s.forward(ctx, rawg.Endpoint("games", params.Params()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetGameByID returns the RAWG game detail record undecoded.
func (s *RAWGService) GetGameByID(ctx context.Context, id int64) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := s.forward(ctx, "games/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetGamesByIDs fetches several game records concurrently. Results are in
// the order of ids; a failed fetch does not affect the others.
func (s *RAWGService) GetGamesByIDs(ctx context.Context, ids []int64) []fanout.Result[json.RawMessage] {
	return fanout.Run(ctx, maxConcurrentFetches, ids, s.GetGameByID)
}

// SearchGames is GetGames with only a search term and page.
func (s *RAWGService) SearchGames(ctx context.Context, query string, page int) (*game.RAWGListResponse, error) {
	return s.GetGames(ctx, &rawg.GameListParams{Search: &query, Page: &page})
}

func (s *RAWGService) forward(ctx context.Context, endpoint string, dst any) error {
	return s.req.Do(ctx, http.MethodGet, "/rawg?endpoint="+url.QueryEscape(endpoint), nil, dst)
}
