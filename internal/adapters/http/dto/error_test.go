package dto_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/domain"
)

func TestErrorDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want any
	}{
		{
			name: "nil error has no details",
			err:  nil,
			want: nil,
		},
		{
			name: "plain error uses its message",
			err:  errors.New("connection refused"),
			want: "connection refused",
		},
		{
			name: "upstream error uses its message",
			err:  &domain.UpstreamError{Service: "rawg", Kind: domain.BadStatus, Status: 404, Body: "not found"},
			want: "rawg: status 404: not found",
		},
		{
			name: "missing credential names the key",
			err:  &domain.MissingCredentialError{Key: "rawg.api_key"},
			want: "missing credentials: rawg.api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.ErrorDetails(tt.err)
			if got != tt.want {
				t.Errorf("ErrorDetails() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorDetails_ValidationFields(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{"search": "must not contain control characters"}}

	got, ok := dto.ErrorDetails(err).(map[string]string)
	if !ok {
		t.Fatalf("ErrorDetails() type = %T, want map[string]string", dto.ErrorDetails(err))
	}
	if got["search"] != "must not contain control characters" {
		t.Errorf("details[search] = %q, want %q", got["search"], "must not contain control characters")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rawg", http.NoBody)

	dto.WriteErrorResponse(rec, req, http.StatusInternalServerError,
		dto.NewErrorResponse(dto.MsgRAWGFailed, errors.New("boom")))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body["error"] != dto.MsgRAWGFailed {
		t.Errorf("error = %v, want %q", body["error"], dto.MsgRAWGFailed)
	}
	if body["details"] != "boom" {
		t.Errorf("details = %v, want %q", body["details"], "boom")
	}
}

func TestWriteErrorResponse_OmitsEmptyDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rawg", http.NoBody)

	dto.WriteErrorResponse(rec, req, http.StatusBadRequest, dto.ErrorResponse{Error: dto.MsgEndpointRequired})

	want := `{"error":"Endpoint parameter is required"}` + "\n"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}
