package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/continuum/internal/platform/httpclient"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
)

// Payload is a pre-encoded request body.
type Payload struct {
	ContentType string
	Body        []byte
}

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, the pre-request hook, execution via httpclient.Client,
// the post-response hook, response body cleanup, and JSON decoding.
//
// The hooks are explicit values so each client's interception logic can be
// tested on its own.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
	before RequestHook
	after  ResponseHook
}

// NewRequester creates a Requester backed by the given HTTP client and
// logger. Either hook may be nil.
func NewRequester(client *httpclient.Client, logger *slog.Logger, before RequestHook, after ResponseHook) *Requester {
	return &Requester{client: client, logger: logger, before: before, after: after}
}

// Do executes an HTTP request against the configured base URL. path is
// appended verbatim and may carry a query string.
//
// A nil payload sends no body. On success any 2xx response is decoded into
// respBody (if non-nil); a *json.RawMessage receives the body unchanged.
func (r *Requester) Do(ctx context.Context, method, path string, payload *Payload, respBody any) error {
	url := r.client.BaseURL() + path

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	if payload != nil && payload.ContentType != "" {
		req.Header.Set("Content-Type", payload.ContentType)
	}
	req.Header.Set("Accept", "application/json")

	if r.before != nil {
		if err := r.before(req); err != nil {
			r.logger.WarnContext(ctx, "request aborted before send",
				slog.String("component", r.client.Name()),
				slog.String("method", method),
				slog.String("url", logging.RedactURL(req.URL)),
				slog.Any("error", err),
			)
			return err
		}
	}

	return r.execute(req, respBody)
}

// HealthCheck reports the underlying client's circuit breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, hands the outcome to the response hook, and
// optionally decodes the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	// httpclient.Do can return both resp and err when retries are exhausted
	// on a retryable status (e.g. 5xx); the hook classifies by the response.
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	if r.after != nil {
		if hookErr := r.after(req, resp, err); hookErr != nil {
			return hookErr
		}
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
