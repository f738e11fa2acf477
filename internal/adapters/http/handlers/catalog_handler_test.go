package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/continuum/internal/adapters/http/dto"
	"github.com/jsamuelsen11/continuum/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
	"github.com/jsamuelsen11/continuum/mocks"
)

func newCatalogHandler(t *testing.T) (*handlers.CatalogHandler, *mocks.MockCatalogService) {
	t.Helper()
	svc := mocks.NewMockCatalogService(t)
	return handlers.NewCatalogHandler(svc), svc
}

// --- SearchIGDB ---

func TestSearchIGDB_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	want := game.Query{Search: "Zelda", Limit: intPtr(5)}
	svc.EXPECT().SearchIGDB(mock.Anything, mock.MatchedBy(func(q game.Query) bool {
		return q.Search == want.Search && q.Limit != nil && *q.Limit == 5 && q.Fields == ""
	})).Return(json.RawMessage(`[{"id":1,"name":"Zelda"}]`), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/igdb", jsonBody(`{"search":"Zelda","limit":5}`))
	h.SearchIGDB(rec, req)

	requireStatus(t, rec, http.StatusOK)
	wantBody := `{"games":[{"id":1,"name":"Zelda"}]}` + "\n"
	if rec.Body.String() != wantBody {
		t.Errorf("body = %q, want %q", rec.Body.String(), wantBody)
	}
}

func TestSearchIGDB_EmptyBodyUsesDefaults(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	svc.EXPECT().SearchIGDB(mock.Anything, game.Query{}).Return(json.RawMessage(`[]`), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/igdb", http.NoBody)
	h.SearchIGDB(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestSearchIGDB_InvalidJSON(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{not json`, `{"limit":"ten"}`} {
		t.Run(body, func(t *testing.T) {
			t.Parallel()
			h, _ := newCatalogHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/igdb", jsonBody(body))
			h.SearchIGDB(rec, req)

			requireStatus(t, rec, http.StatusInternalServerError)
			want := `{"error":"Failed to fetch data from IGDB API","details":{"body":"invalid JSON"}}` + "\n"
			if rec.Body.String() != want {
				t.Errorf("body = %q, want %q", rec.Body.String(), want)
			}
		})
	}
}

func TestSearchIGDB_ValidationFailure(t *testing.T) {
	t.Parallel()
	h, _ := newCatalogHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/igdb", jsonBody(`{"fields":"name, rating; where id = 1"}`))
	h.SearchIGDB(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["error"] != dto.MsgIGDBFailed {
		t.Errorf("error = %v, want %q", resp["error"], dto.MsgIGDBFailed)
	}
	details, ok := resp["details"].(map[string]any)
	if !ok {
		t.Fatalf("details = %v, want field map", resp["details"])
	}
	if _, ok := details["fields"]; !ok {
		t.Errorf("details missing fields, got %v", details)
	}
}

func TestSearchIGDB_LimitPassedThrough(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{0, 1000} {
		h, svc := newCatalogHandler(t)
		svc.EXPECT().SearchIGDB(mock.Anything, mock.MatchedBy(func(q game.Query) bool {
			return q.Limit != nil && *q.Limit == limit
		})).Return(json.RawMessage(`[]`), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/igdb", jsonBody(fmt.Sprintf(`{"limit":%d}`, limit)))
		h.SearchIGDB(rec, req)

		requireStatus(t, rec, http.StatusOK)
	}
}

func TestSearchIGDB_UpstreamFailure(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	svc.EXPECT().SearchIGDB(mock.Anything, mock.Anything).
		Return(nil, &domain.UpstreamError{Service: "igdb", Kind: domain.BadStatus, Status: 401, Body: "unauthorized"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/igdb", jsonBody(`{}`))
	h.SearchIGDB(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["error"] != dto.MsgIGDBFailed {
		t.Errorf("error = %v, want %q", resp["error"], dto.MsgIGDBFailed)
	}
	if resp["details"] != "igdb: status 401: unauthorized" {
		t.Errorf("details = %v", resp["details"])
	}
}

func TestSearchIGDB_MissingCredentials(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	svc.EXPECT().SearchIGDB(mock.Anything, mock.Anything).
		Return(nil, &domain.MissingCredentialError{Key: "igdb.access_token"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/igdb", jsonBody(`{}`))
	h.SearchIGDB(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- ForwardRAWG ---

func TestForwardRAWG_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	upstream := `{"count":1,"next":null,"previous":null,"results":[{"id":3498,"name":"GTA V"}]}`
	svc.EXPECT().ForwardRAWG(mock.Anything, "games?page=2").Return(json.RawMessage(upstream), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rawg?endpoint=games%3Fpage%3D2", http.NoBody)
	h.ForwardRAWG(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if rec.Body.String() != upstream {
		t.Errorf("body = %q, want upstream body verbatim", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestForwardRAWG_MissingEndpoint(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"/api/rawg", "/api/rawg?endpoint="} {
		t.Run(target, func(t *testing.T) {
			t.Parallel()
			h, _ := newCatalogHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
			h.ForwardRAWG(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			want := `{"error":"Endpoint parameter is required"}` + "\n"
			if rec.Body.String() != want {
				t.Errorf("body = %q, want %q", rec.Body.String(), want)
			}
		})
	}
}

func TestForwardRAWG_BlankEndpointIsForwarded(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	svc.EXPECT().ForwardRAWG(mock.Anything, " ").Return(json.RawMessage(`{}`), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rawg?endpoint=%20", http.NoBody)
	h.ForwardRAWG(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestForwardRAWG_NotRelative(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	svc.EXPECT().ForwardRAWG(mock.Anything, "https://evil.example.com").
		Return(nil, &domain.ValidationError{Fields: map[string]string{"endpoint": "must be a relative path"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rawg?endpoint=https%3A%2F%2Fevil.example.com", http.NoBody)
	h.ForwardRAWG(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["error"] != dto.MsgEndpointNotRelative {
		t.Errorf("error = %v, want %q", resp["error"], dto.MsgEndpointNotRelative)
	}
}

func TestForwardRAWG_UpstreamFailure(t *testing.T) {
	t.Parallel()
	h, svc := newCatalogHandler(t)

	svc.EXPECT().ForwardRAWG(mock.Anything, "games").
		Return(nil, &domain.UpstreamError{Service: "rawg", Kind: domain.NoResponse, Err: errors.New("dial tcp: timeout")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rawg?endpoint=games", http.NoBody)
	h.ForwardRAWG(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["error"] != dto.MsgRAWGFailed {
		t.Errorf("error = %v, want %q", resp["error"], dto.MsgRAWGFailed)
	}
	if resp["details"] != "rawg: no response: dial tcp: timeout" {
		t.Errorf("details = %v", resp["details"])
	}
}
