// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/domain/game"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService implements ports.CatalogService by forwarding to the IGDB
// and RAWG client ports and the Twitch token issuer. It validates input,
// logs failures, and passes upstream payloads through untouched.
type CatalogService struct {
	igdb   ports.IGDBClient
	rawg   ports.RAWGClient
	issuer ports.TokenIssuer
	logger *slog.Logger
}

// NewCatalogService creates a CatalogService. A nil logger discards output.
func NewCatalogService(
	igdb ports.IGDBClient,
	rawg ports.RAWGClient,
	issuer ports.TokenIssuer,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CatalogService{
		igdb:   igdb,
		rawg:   rawg,
		issuer: issuer,
		logger: logger,
	}
}

// SearchIGDB validates q and returns the matching IGDB games.
func (s *CatalogService) SearchIGDB(ctx context.Context, q game.Query) (json.RawMessage, error) {
	s.logger.InfoContext(ctx, "searching igdb",
		slog.String("search", q.Search),
		slog.String("fields", q.EffectiveFields()),
		slog.Int("limit", q.EffectiveLimit()),
	)

	if err := q.Validate(); err != nil {
		s.logger.WarnContext(ctx, "rejected igdb query",
			slog.String("operation", "SearchIGDB"),
			slog.String("component", "igdb"),
			slog.Any("error", err),
		)
		return nil, err
	}

	games, err := s.igdb.QueryGames(ctx, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search igdb",
			slog.String("operation", "SearchIGDB"),
			slog.String("component", "igdb"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return games, nil
}

// ForwardRAWG proxies endpoint to RAWG. The endpoint must be a path relative
// to the RAWG API root; absolute URLs and ".." segments are rejected so the
// API key is only ever sent to RAWG.
func (s *CatalogService) ForwardRAWG(ctx context.Context, endpoint string) (json.RawMessage, error) {
	if err := validateEndpoint(endpoint); err != nil {
		s.logger.WarnContext(ctx, "rejected rawg endpoint",
			slog.String("operation", "ForwardRAWG"),
			slog.String("component", "rawg"),
			slog.Any("error", err),
		)
		return nil, err
	}

	path, _, _ := strings.Cut(endpoint, "?")
	s.logger.InfoContext(ctx, "forwarding rawg request", slog.String("endpoint", path))

	body, err := s.rawg.Get(ctx, endpoint)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to forward rawg request",
			slog.String("operation", "ForwardRAWG"),
			slog.String("component", "rawg"),
			slog.String("endpoint", path),
			slog.Any("error", err),
		)
		return nil, err
	}

	return body, nil
}

// IssueToken returns a newly minted Twitch application access token.
func (s *CatalogService) IssueToken(ctx context.Context) (*domain.AccessToken, error) {
	s.logger.InfoContext(ctx, "issuing twitch token")

	tok, err := s.issuer.IssueToken(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue twitch token",
			slog.String("operation", "IssueToken"),
			slog.String("component", "twitch"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tok, nil
}

// validateEndpoint accepts relative paths with an optional query string.
func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return &domain.ValidationError{Fields: map[string]string{"endpoint": "is required"}}
	}

	notRelative := &domain.ValidationError{Fields: map[string]string{"endpoint": "must be a relative path"}}

	if strings.HasPrefix(endpoint, "//") || strings.Contains(endpoint, `\`) {
		return notRelative
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return notRelative
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if seg == ".." {
			return notRelative
		}
	}

	return nil
}
