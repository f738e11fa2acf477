// Package gateway is the Go client for the Continuum gateway endpoints. It
// never talks to IGDB, RAWG or Twitch directly and holds no upstream
// credentials; every call goes through /api on the gateway.
//
//	c := gateway.New(httpclient.New(&cfg.API, "continuum-api", metrics, logger), logger)
//	games, err := c.RAWG().SearchGames(ctx, "portal", 1)
package gateway

import (
	"log/slog"

	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/continuum/internal/platform/httpclient"
)

// Client groups the per-provider facades. It is safe for concurrent use.
type Client struct {
	rawg   *RAWGService
	igdb   *IGDBService
	twitch *TwitchService
}

// New creates a Client whose requests go through client. The client's
// BaseURL should be the gateway API root (e.g. "http://localhost:8080/api").
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	req := acl.NewRequester(client, logger, nil, classifyResponse(logger))
	return &Client{
		rawg:   &RAWGService{req: req},
		igdb:   &IGDBService{req: req},
		twitch: &TwitchService{req: req},
	}
}

// RAWG returns the RAWG facade.
func (c *Client) RAWG() *RAWGService { return c.rawg }

// IGDB returns the IGDB facade.
func (c *Client) IGDB() *IGDBService { return c.igdb }

// Twitch returns the Twitch facade.
func (c *Client) Twitch() *TwitchService { return c.twitch }
