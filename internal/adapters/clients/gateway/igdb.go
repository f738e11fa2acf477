package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
)

// SearchFields is the projection SearchGames uses when none is given.
const SearchFields = "name,rating,summary,cover.url"

// IGDBService calls POST /igdb on the gateway.
type IGDBService struct {
	req *acl.Requester
}

type igdbRequest struct {
	Fields string `json:"fields"`
	Search string `json:"search,omitempty"`
}

// GetGames lists games with the given field projection, or
// game.DefaultFields when fields is empty.
func (s *IGDBService) GetGames(ctx context.Context, fields string) (*game.IGDBListResponse, error) {
	if fields == "" {
		fields = game.DefaultFields
	}
	return s.post(ctx, igdbRequest{Fields: fields})
}

// SearchGames searches by name. An empty fields selects SearchFields.
func (s *IGDBService) SearchGames(ctx context.Context, query, fields string) (*game.IGDBListResponse, error) {
	if fields == "" {
		fields = SearchFields
	}
	return s.post(ctx, igdbRequest{Fields: fields, Search: query})
}

func (s *IGDBService) post(ctx context.Context, body igdbRequest) (*game.IGDBListResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding igdb request: %w", err)
	}

	var resp game.IGDBListResponse
	if err := s.req.Do(ctx, http.MethodPost, "/igdb", &acl.Payload{
		ContentType: "application/json",
		Body:        payload,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
