package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// CatalogHandler handles the IGDB search and RAWG passthrough endpoints.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler returns a CatalogHandler backed by service.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// SearchIGDB handles POST /api/igdb. Every failure, a malformed body
// included, answers 500 with the IGDB error envelope.
func (h *CatalogHandler) SearchIGDB(w http.ResponseWriter, r *http.Request) {
	var req dto.IGDBSearchRequest
	if err := bind(w, r, &req); err != nil {
		igdbFailed(w, r, err)
		return
	}

	games, err := h.service.SearchIGDB(r.Context(), req.ToQuery())
	if err != nil {
		igdbFailed(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, dto.IGDBSearchResponse{Games: games})
}

// ForwardRAWG handles GET /api/rawg?endpoint=<path>. The upstream body is
// returned verbatim.
func (h *CatalogHandler) ForwardRAWG(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Query().Get("endpoint")
	if endpoint == "" {
		dto.WriteErrorResponse(w, r, http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgEndpointRequired})
		return
	}

	body, err := h.service.ForwardRAWG(r.Context(), endpoint)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			dto.WriteErrorResponse(w, r, http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgEndpointNotRelative})
			return
		}
		dto.WriteErrorResponse(w, r, http.StatusInternalServerError,
			dto.NewErrorResponse(dto.MsgRAWGFailed, err))
		return
	}

	respond(w, r, http.StatusOK, body)
}

func igdbFailed(w http.ResponseWriter, r *http.Request, err error) {
	dto.WriteErrorResponse(w, r, http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgIGDBFailed, err))
}
