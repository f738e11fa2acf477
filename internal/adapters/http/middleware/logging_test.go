package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func logged(t *testing.T, h http.Handler, req *http.Request) string {
	t.Helper()
	var buf bytes.Buffer
	middleware.Logging(testLogger(&buf))(h).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogging_RequestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   int
		method string
		target string
		want   []string
	}{
		{
			name:   "created",
			code:   http.StatusCreated,
			method: http.MethodPost,
			target: "/api/igdb",
			want:   []string{"request started", "request completed", "method=POST", "/api/igdb", "status=201", "bytes=0", "duration="},
		},
		{
			name:   "not found",
			code:   http.StatusNotFound,
			method: http.MethodGet,
			target: "/missing",
			want:   []string{"status=404", "route=/missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := logged(t, status(tt.code), httptest.NewRequest(tt.method, tt.target, http.NoBody))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestLogging_RedactsQueryCredentials(t *testing.T) {
	t.Parallel()

	out := logged(t, status(http.StatusOK),
		httptest.NewRequest(http.MethodGet, "/api/rawg?endpoint=games&key=rawg-secret", http.NoBody))

	assert.NotContains(t, out, "rawg-secret")
	assert.Contains(t, out, "endpoint=games")
}

func TestLogging_DebugHeadersAreMasked(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/twitch-auth", http.NoBody)
	req.Header.Set("Authorization", "Bearer live-token")
	req.Header.Set("Accept", "application/json")

	out := logged(t, status(http.StatusOK), req)

	assert.Contains(t, out, "request headers")
	assert.Contains(t, out, "application/json")
	assert.NotContains(t, out, "live-token")
}

func TestLogging_UsesChiRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/games/{id}", status(http.StatusOK).ServeHTTP)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/games/42", http.NoBody))

	assert.Contains(t, buf.String(), "route=/games/{id}")
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("handler log")
	})
	handler := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(testLogger(&buf))(inner)))

	req := httptest.NewRequest(http.MethodGet, "/api/rawg", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "msg=\"handler log\" request_id=req-log-test correlation_id=corr-log-test")
}
