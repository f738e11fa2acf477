package gateway

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/continuum/internal/domain"
)

// TwitchService calls POST /twitch-auth on the gateway.
type TwitchService struct {
	req *acl.Requester
}

// GetAccessToken asks the gateway to mint a Twitch app access token.
func (s *TwitchService) GetAccessToken(ctx context.Context) (*domain.AccessToken, error) {
	var tok domain.AccessToken
	if err := s.req.Do(ctx, http.MethodPost, "/twitch-auth", nil, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}
