package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/platform/logging"
)

// maxErrorBodySize caps how much of a gateway error response is read.
const maxErrorBodySize = 1 << 20

// APIError is returned by every facade call that does not succeed.
// StatusCode is zero when the gateway could not be reached.
type APIError struct {
	StatusCode int
	Message    string
	Details    any
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway unreachable: %s", e.Message)
	}
	if e.Details != nil {
		return fmt.Sprintf("gateway status %d: %s: %v", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("gateway status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// errorEnvelope mirrors the gateway's JSON error body.
type errorEnvelope struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// classifyResponse turns transport failures and non-2xx answers into
// *APIError values.
func classifyResponse(logger *slog.Logger) func(*http.Request, *http.Response, error) error {
	return func(req *http.Request, resp *http.Response, err error) error {
		switch {
		case resp == nil && err != nil:
			logger.WarnContext(req.Context(), "gateway request failed",
				slog.String("component", "gateway"),
				slog.String("url", logging.RedactURL(req.URL)),
				slog.Any("error", err),
			)
			return &APIError{Message: err.Error(), Err: err}

		case resp != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300):
			apiErr := decodeAPIError(resp)
			logger.WarnContext(req.Context(), "gateway returned error status",
				slog.String("component", "gateway"),
				slog.String("url", logging.RedactURL(req.URL)),
				slog.Int("status", apiErr.StatusCode),
				slog.String("message", apiErr.Message),
			)
			return apiErr

		default:
			return nil
		}
	}
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	if resp.Body == nil {
		return apiErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Error != "" {
		apiErr.Message = env.Error
		apiErr.Details = env.Details
		return apiErr
	}

	apiErr.Details = string(body)
	return apiErr
}
