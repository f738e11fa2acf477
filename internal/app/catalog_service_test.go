package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
	"github.com/jsamuelsen11/continuum/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func intPtr(v int) *int { return &v }

type serviceMocks struct {
	igdb   *mocks.MockIGDBClient
	rawg   *mocks.MockRAWGClient
	issuer *mocks.MockTokenIssuer
}

func newTestService(t *testing.T) (*CatalogService, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		igdb:   mocks.NewMockIGDBClient(t),
		rawg:   mocks.NewMockRAWGClient(t),
		issuer: mocks.NewMockTokenIssuer(t),
	}
	return NewCatalogService(m.igdb, m.rawg, m.issuer, discardLogger()), m
}

// --- NewCatalogService ---

func TestNewCatalogService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(mocks.NewMockIGDBClient(t), mocks.NewMockRAWGClient(t), mocks.NewMockTokenIssuer(t), nil)
	if svc.logger == nil {
		t.Fatal("NewCatalogService(nil logger) should create a no-op logger, got nil")
	}
}

// --- SearchIGDB ---

func TestCatalogService_SearchIGDB(t *testing.T) {
	t.Parallel()

	t.Run("returns upstream games", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		q := game.Query{Search: "Zelda", Limit: intPtr(5)}
		want := json.RawMessage(`[{"id":1,"name":"Zelda"}]`)
		m.igdb.EXPECT().QueryGames(mock.Anything, q).Return(want, nil)

		got, err := svc.SearchIGDB(context.Background(), q)
		if err != nil {
			t.Fatalf("SearchIGDB() error = %v, want nil", err)
		}
		if string(got) != string(want) {
			t.Errorf("SearchIGDB() = %s, want %s", got, want)
		}
	})

	t.Run("rejects invalid query without calling client", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.SearchIGDB(context.Background(), game.Query{Fields: "name; where id = 1"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SearchIGDB() error = %v, want ErrValidation", err)
		}
	})

	t.Run("propagates client error", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		upErr := &domain.UpstreamError{Service: "igdb", Kind: domain.BadStatus, Status: 401}
		m.igdb.EXPECT().QueryGames(mock.Anything, game.Query{}).Return(nil, upErr)

		_, err := svc.SearchIGDB(context.Background(), game.Query{})
		if !errors.Is(err, domain.ErrBadStatus) {
			t.Errorf("SearchIGDB() error = %v, want ErrBadStatus", err)
		}
	})
}

// --- ForwardRAWG ---

func TestCatalogService_ForwardRAWG(t *testing.T) {
	t.Parallel()

	t.Run("forwards relative endpoint", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		want := json.RawMessage(`{"count":0,"results":[]}`)
		m.rawg.EXPECT().Get(mock.Anything, "games?page=2").Return(want, nil)

		got, err := svc.ForwardRAWG(context.Background(), "games?page=2")
		if err != nil {
			t.Fatalf("ForwardRAWG() error = %v, want nil", err)
		}
		if string(got) != string(want) {
			t.Errorf("ForwardRAWG() = %s, want %s", got, want)
		}
	})

	t.Run("propagates missing credentials", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.rawg.EXPECT().Get(mock.Anything, "games").Return(nil, &domain.MissingCredentialError{Key: "rawg.api_key"})

		_, err := svc.ForwardRAWG(context.Background(), "games")
		if !errors.Is(err, domain.ErrMissingCredentials) {
			t.Errorf("ForwardRAWG() error = %v, want ErrMissingCredentials", err)
		}
	})
}

func TestCatalogService_ForwardRAWG_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		wantMsg  string
	}{
		{"empty", "", "is required"},
		{"absolute url", "https://evil.example.com/games", "must be a relative path"},
		{"scheme relative", "//evil.example.com/games", "must be a relative path"},
		{"host with port", "evil.example.com:8080/games", "must be a relative path"},
		{"parent segment", "games/../../admin", "must be a relative path"},
		{"leading parent", "../games", "must be a relative path"},
		{"backslash", `games\..\admin`, "must be a relative path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)

			_, err := svc.ForwardRAWG(context.Background(), tt.endpoint)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ForwardRAWG(%q) error = %v, want *domain.ValidationError", tt.endpoint, err)
			}
			if verr.Fields["endpoint"] != tt.wantMsg {
				t.Errorf("Fields[endpoint] = %q, want %q", verr.Fields["endpoint"], tt.wantMsg)
			}
		})
	}
}

func TestValidateEndpoint_Accepts(t *testing.T) {
	t.Parallel()

	for _, endpoint := range []string{
		"games",
		"/games",
		"games/3498",
		"games?search=the%20witcher&page_size=5",
		"games?dates=2020-01-01,2020-12-31",
		"genres",
		"games/3498/screenshots",
		"games/..hidden",
		" ",
	} {
		if err := validateEndpoint(endpoint); err != nil {
			t.Errorf("validateEndpoint(%q) = %v, want nil", endpoint, err)
		}
	}
}

func TestCatalogService_LogsRejectedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      func(*CatalogService) error
		operation string
		component string
	}{
		{
			name: "igdb query",
			call: func(s *CatalogService) error {
				_, err := s.SearchIGDB(context.Background(), game.Query{Search: "a\x00b"})
				return err
			},
			operation: "SearchIGDB",
			component: "igdb",
		},
		{
			name: "rawg endpoint",
			call: func(s *CatalogService) error {
				_, err := s.ForwardRAWG(context.Background(), "https://evil.example.com")
				return err
			},
			operation: "ForwardRAWG",
			component: "rawg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			svc := NewCatalogService(mocks.NewMockIGDBClient(t), mocks.NewMockRAWGClient(t), mocks.NewMockTokenIssuer(t), logger)

			if err := tt.call(svc); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}

			var rejected map[string]any
			for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
				var entry map[string]any
				if err := json.Unmarshal(line, &entry); err != nil {
					t.Fatalf("unmarshal log line %q: %v", line, err)
				}
				if entry["level"] == "WARN" {
					rejected = entry
				}
			}
			if rejected == nil {
				t.Fatalf("no warning logged, got %s", buf.String())
			}
			if rejected["operation"] != tt.operation || rejected["component"] != tt.component {
				t.Errorf("operation/component = %v/%v, want %s/%s",
					rejected["operation"], rejected["component"], tt.operation, tt.component)
			}
		})
	}
}

// --- IssueToken ---

func TestCatalogService_IssueToken(t *testing.T) {
	t.Parallel()

	t.Run("returns token", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		want := &domain.AccessToken{AccessToken: "abc", ExpiresIn: 3600}
		m.issuer.EXPECT().IssueToken(mock.Anything).Return(want, nil)

		got, err := svc.IssueToken(context.Background())
		if err != nil {
			t.Fatalf("IssueToken() error = %v, want nil", err)
		}
		if *got != *want {
			t.Errorf("IssueToken() = %+v, want %+v", got, want)
		}
	})

	t.Run("propagates provider rejection", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.issuer.EXPECT().IssueToken(mock.Anything).Return(nil, &domain.ProviderRejectedError{Status: 400})

		_, err := svc.IssueToken(context.Background())
		if !errors.Is(err, domain.ErrProviderRejected) {
			t.Errorf("IssueToken() error = %v, want ErrProviderRejected", err)
		}
	})
}
