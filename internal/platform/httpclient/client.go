// Package httpclient is the outbound pipeline shared by the IGDB, RAWG and
// Twitch adapters. Each call runs
//
//	circuit breaker → client span → id headers → retry loop → net/http
//
// and is counted in the client request metrics.
//
//	igdb := httpclient.New(&cfg.Upstreams.IGDB, "igdb", metrics, logger)
//	resp, err := igdb.Do(ctx, req)
//
// A Client is also an http.RoundTripper, so libraries that want an
// *http.Client (golang.org/x/oauth2 among them) go through the same
// pipeline:
//
//	hc := &http.Client{Transport: igdb}
//
// Request and correlation ids placed in the context with WithRequestID and
// WithCorrelationID are copied onto every outbound request.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/continuum/internal/platform/config"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/continuum/internal/platform/httpclient"

type metaKey int

const (
	requestIDKey metaKey = iota
	correlationIDKey
)

// propagated maps context metadata to the outbound header carrying it.
var propagated = []struct {
	key    metaKey
	header string
}{
	{requestIDKey, "X-Request-ID"},
	{correlationIDKey, "X-Correlation-ID"},
}

// WithRequestID stores the inbound request id for outbound X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID stores the inbound correlation id for outbound
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// Client sends requests to one upstream.
type Client struct {
	hc      *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the upstream called name ("igdb", "rawg",
// "twitch"). The name labels spans, metrics and the breaker. metrics may be
// nil. Unless cfg.CircuitBreaker.Enabled is set the breaker stays closed
// and only reports health.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	enabled, maxFailures := cfg.CircuitBreaker.Enabled, cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return enabled && int(counts.ConsecutiveFailures) >= maxFailures
		},
		// A caller hanging up says nothing about the upstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Do sends req and returns the upstream response.
//
// Any non-retryable status (2xx, 3xx, most 4xx) comes back with a nil error.
// If retries run out on a 429 or 5xx, both the last response and an error
// are returned. A transport failure or an open breaker returns a nil
// response. The caller closes the body of any non-nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		for _, p := range propagated {
			if id, _ := ctx.Value(p.key).(string); id != "" {
				req.Header.Set(p.header, id)
			}
		}

		var resp *http.Response
		err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &resp)
		endSpan(span, resp, err)
		return resp, err
	})

	c.recordMetrics(ctx, method, start, resp, err)
	return resp, err
}

// RoundTrip runs a clone of req through Do. Error statuses are returned as
// responses so the calling library can interpret them.
func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	resp, err := c.Do(ctx, req.Clone(ctx))
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// BaseURL is the upstream base URL from configuration.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the upstream identifier. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without calling the upstream: nil
// when closed, "degraded" while half-open, "failing" when open.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.name, state)
	}
}

// startSpan opens the client span and writes its trace context into the
// outbound headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", logging.RedactURL(req.URL)),
			telemetry.AttrPeerService.String(c.name),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted as
// circuit_open.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
