// Package acl implements the Anti-Corruption Layer between the gateway and
// its upstreams: the IGDB query API, the RAWG REST catalog, and the Twitch
// identity provider. Query translation lives in subpackages (acl/igdb,
// acl/rawg); the shared request lifecycle, hooks, and error classification
// live here.
package acl

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// ClassifyResponse returns the shared ResponseHook. A transport failure
// with no response becomes a NoResponse *domain.UpstreamError and a non-2xx
// response a BadStatus one carrying the status and (capped) body. Both are
// logged and counted. Successful responses pass through. metrics may be nil.
func ClassifyResponse(service string, logger *slog.Logger, metrics *telemetry.Metrics) ResponseHook {
	return func(req *http.Request, resp *http.Response, err error) error {
		ctx := req.Context()

		switch {
		case resp == nil && err != nil:
			logger.ErrorContext(ctx, "upstream request failed",
				slog.String("component", service),
				slog.String("method", req.Method),
				slog.String("url", logging.RedactURL(req.URL)),
				slog.Any("error", err),
			)
			countUpstreamError(ctx, metrics, service, domain.NoResponse)
			return &domain.UpstreamError{Service: service, Kind: domain.NoResponse, Err: err}

		case resp != nil && !isSuccess(resp.StatusCode):
			body := readErrorBody(resp)
			logger.ErrorContext(ctx, "upstream returned error status",
				slog.String("component", service),
				slog.String("method", req.Method),
				slog.String("url", logging.RedactURL(req.URL)),
				slog.Int("status", resp.StatusCode),
				slog.String("body", body),
			)
			countUpstreamError(ctx, metrics, service, domain.BadStatus)
			return &domain.UpstreamError{
				Service: service,
				Kind:    domain.BadStatus,
				Status:  resp.StatusCode,
				Body:    body,
			}

		default:
			return nil
		}
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// readErrorBody reads at most maxErrorBodySize bytes of an error response.
func readErrorBody(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}
	return string(body)
}

func countUpstreamError(ctx context.Context, metrics *telemetry.Metrics, service string, kind domain.UpstreamErrorKind) {
	if metrics == nil {
		return
	}

	metrics.UpstreamErrorTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrPeerService.String(service),
		telemetry.AttrErrorKind.String(kind.String()),
	))
}
