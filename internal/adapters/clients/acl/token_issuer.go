package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jsamuelsen11/continuum/internal/domain"
	"github.com/jsamuelsen11/continuum/internal/platform/credentials"
	"github.com/jsamuelsen11/continuum/internal/platform/httpclient"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TokenIssuer   = (*TokenIssuer)(nil)
	_ ports.HealthChecker = (*TokenIssuer)(nil)
)

// twitchTokenPath is the token endpoint relative to the identity provider
// base URL.
const twitchTokenPath = "/oauth2/token"

// TokenIssuer exchanges the Twitch application credentials for an app access
// token with the OAuth2 client-credentials grant. Tokens are not cached:
// every call performs a new exchange.
type TokenIssuer struct {
	store    CredentialResolver
	client   *httpclient.Client
	tokenURL string
	logger   *slog.Logger
}

// NewTokenIssuer creates a TokenIssuer that posts to <base>/oauth2/token
// through client, so the exchange shares its tracing, metrics, and circuit
// breaker.
func NewTokenIssuer(client *httpclient.Client, store CredentialResolver, logger *slog.Logger) *TokenIssuer {
	return &TokenIssuer{
		store:    store,
		client:   client,
		tokenURL: client.BaseURL() + twitchTokenPath,
		logger:   logger,
	}
}

// IssueToken performs one client-credentials exchange. Missing credentials
// fail before any network call; any transport failure or non-2xx answer is
// a *domain.ProviderRejectedError.
func (t *TokenIssuer) IssueToken(ctx context.Context) (*domain.AccessToken, error) {
	set, err := t.store.Resolve(credentials.KindTwitch)
	if err != nil {
		t.logger.WarnContext(ctx, "token exchange skipped",
			slog.String("component", "twitch"),
			slog.Any("error", err),
		)
		return nil, err
	}

	cfg := clientcredentials.Config{
		ClientID:     set.ClientID,
		ClientSecret: set.ClientSecret,
		TokenURL:     t.tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: t.client})

	tok, err := cfg.Token(ctx)
	if err != nil {
		rejected := toProviderRejected(err)
		t.logger.ErrorContext(ctx, "token exchange failed",
			slog.String("component", "twitch"),
			slog.Int("status", rejected.Status),
			slog.Any("error", err),
		)
		return nil, rejected
	}

	return &domain.AccessToken{
		AccessToken: tok.AccessToken,
		ExpiresIn:   expiresIn(tok),
	}, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (t *TokenIssuer) Name() string {
	return "twitch"
}

// HealthCheck reports identity provider availability from the circuit
// breaker state.
func (t *TokenIssuer) HealthCheck(ctx context.Context) error {
	return t.client.HealthCheck(ctx)
}

// toProviderRejected keeps the provider's status and body when it answered.
func toProviderRejected(err error) *domain.ProviderRejectedError {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return &domain.ProviderRejectedError{
			Status: re.Response.StatusCode,
			Body:   string(re.Body),
			Err:    err,
		}
	}
	return &domain.ProviderRejectedError{Err: err}
}

// expiresIn returns the provider's expires_in value as sent. JSON numbers
// arrive as float64; form-encoded responses as strings.
func expiresIn(tok *oauth2.Token) int64 {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		if v > math.MaxInt64 || v < 0 {
			return 0
		}
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}
