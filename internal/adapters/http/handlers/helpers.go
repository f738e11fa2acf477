package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
)

// maxRequestBody caps JSON request bodies at 1 MiB.
const maxRequestBody = 1 << 20

// respond writes an encoded JSON body.
func respond(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response failed",
			slog.String("operation", "handlers.respond"),
			slog.Any("error", err),
		)
	}
}

// respondJSON encodes v and writes it. An encoding failure becomes a 500.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response failed",
			slog.String("operation", "handlers.respondJSON"),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, http.StatusInternalServerError,
			dto.ErrorResponse{Error: dto.MsgInternalServerError})
		return
	}
	respond(w, r, status, append(body, '\n'))
}

// request is a body that can check its own fields.
type request interface {
	Validate() error
}

// bind decodes the JSON body into dst and validates it. An empty body
// decodes to the zero request. Undecodable bodies come back as a
// *domain.ValidationError on "body".
func bind[T request](w http.ResponseWriter, r *http.Request, dst T) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}}
	}
	return dst.Validate()
}
