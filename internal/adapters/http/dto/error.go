package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/domain"
)

// Gateway error messages returned in ErrorResponse.Error.
const (
	MsgIGDBFailed          = "Failed to fetch data from IGDB API"
	MsgRAWGFailed          = "Failed to fetch data from RAWG API"
	MsgEndpointRequired    = "Endpoint parameter is required"
	MsgEndpointNotRelative = "Endpoint parameter must be a relative path"
	MsgMissingTwitchCreds  = "Missing Twitch credentials"
	MsgTwitchAuthFailed    = "Failed to authenticate with Twitch"
	MsgInternalServerError = "Internal server error"
	MsgRequestTimeout      = "Request timed out"
	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
)

// ErrorResponse is the error envelope written by every gateway endpoint.
// Details carries the underlying error message, or the per-field messages
// for validation failures, and is omitted when empty.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// NewErrorResponse builds an ErrorResponse with details derived from err.
// A nil err produces a response without details.
func NewErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{Error: message, Details: ErrorDetails(err)}
}

// ErrorDetails renders err for the details field of an ErrorResponse.
func ErrorDetails(err error) any {
	if err == nil {
		return nil
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return err.Error()
}

// WriteErrorResponse writes resp as JSON with the given status code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}
