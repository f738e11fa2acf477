// Package http is the gateway's inbound side: the chi route table and the
// server lifecycle around it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/adapters/http/handlers"
)

// Routes holds the handlers NewRouter mounts.
type Routes struct {
	Catalog *handlers.CatalogHandler
	Auth    *handlers.AuthHandler
	Health  *handlers.HealthHandler
}

// NewRouter mounts the gateway endpoints under /api and the probes under
// /health, behind middlewares applied outermost first. Unknown paths and
// methods get the usual JSON error envelope.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, http.StatusNotFound, dto.ErrorResponse{Error: dto.MsgNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: dto.MsgMethodNotAllowed})
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", routes.Health.Liveness)
		r.Get("/ready", routes.Health.Readiness)
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/igdb", routes.Catalog.SearchIGDB)
		r.Get("/rawg", routes.Catalog.ForwardRAWG)
		r.Post("/twitch-auth", routes.Auth.IssueTwitchToken)
	})

	return r
}
