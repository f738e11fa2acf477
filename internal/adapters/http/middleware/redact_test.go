package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    map[string]string{"Authorization": redactedValue},
		},
		{
			name:    "api key",
			headers: http.Header{"X-Api-Key": {"rawg-key"}},
			want:    map[string]string{"X-Api-Key": redactedValue},
		},
		{
			name:    "cookie",
			headers: http.Header{"Cookie": {"session=abc"}},
			want:    map[string]string{"Cookie": redactedValue},
		},
		{
			name:    "twitch client id",
			headers: http.Header{"Client-Id": {"twitch-client-id"}},
			want:    map[string]string{"Client-Id": redactedValue},
		},
		{
			name:    "non-sensitive passes through",
			headers: http.Header{"Content-Type": {"application/json"}},
			want:    map[string]string{"Content-Type": "application/json"},
		},
		{
			name:    "multi-value joined",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    map[string]string{"Accept": "text/html,application/json"},
		},
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tc.headers)

			got := make(map[string]string, len(attrs))
			for _, a := range attrs {
				got[a.Key] = a.Value.String()
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id":  {"r1"},
		"Authorization": {"Bearer t"},
		"Content-Type":  {"application/json"},
	})

	require.Len(t, attrs, 3)
	assert.Equal(t, "Authorization", attrs[0].Key)
	assert.Equal(t, "Content-Type", attrs[1].Key)
	assert.Equal(t, "X-Request-Id", attrs[2].Key)
}
