// Package dto provides HTTP request/response data transfer objects and the
// error envelope for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"

	"github.com/jsamuelsen11/continuum/internal/domain"
)

// IGDBSearchResponse wraps the IGDB result array without decoding it.
type IGDBSearchResponse struct {
	Games json.RawMessage `json:"games"`
}

// TokenResponse is the body returned by POST /api/twitch-auth.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ToTokenResponse converts a domain AccessToken to an HTTP response DTO.
func ToTokenResponse(tok *domain.AccessToken) TokenResponse {
	return TokenResponse{
		AccessToken: tok.AccessToken,
		ExpiresIn:   tok.ExpiresIn,
	}
}
