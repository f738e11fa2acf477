package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// AuthHandler handles the Twitch token endpoint.
type AuthHandler struct {
	service ports.CatalogService
}

// NewAuthHandler returns an AuthHandler backed by service.
func NewAuthHandler(service ports.CatalogService) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueTwitchToken handles POST /api/twitch-auth. Every call mints a new
// token; nothing is cached.
func (h *AuthHandler) IssueTwitchToken(w http.ResponseWriter, r *http.Request) {
	tok, err := h.service.IssueToken(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			dto.WriteErrorResponse(w, r, http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgMissingTwitchCreds})
			return
		}
		dto.WriteErrorResponse(w, r, http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgTwitchAuthFailed})
		return
	}

	respondJSON(w, r, http.StatusOK, dto.ToTokenResponse(tok))
}
