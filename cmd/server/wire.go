package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/continuum/internal/adapters/http"
	"github.com/jsamuelsen11/continuum/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/continuum/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/continuum/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/continuum/internal/app"
	"github.com/jsamuelsen11/continuum/internal/platform/config"
	"github.com/jsamuelsen11/continuum/internal/platform/credentials"
	"github.com/jsamuelsen11/continuum/internal/platform/health"
	"github.com/jsamuelsen11/continuum/internal/platform/httpclient"
	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// Upstream names. Each keys a named *httpclient.Client in the injector and
// labels that client's logs, spans, metrics and readiness entry.
const (
	upstreamIGDB   = "igdb"
	upstreamRAWG   = "rawg"
	upstreamTwitch = "twitch"
)

// newInjector declares the gateway's object graph. Nothing is built until
// the server is invoked. metrics is nil when telemetry is disabled.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	i := do.New()

	for name, cc := range map[string]*config.ClientConfig{
		upstreamIGDB:   &cfg.Upstreams.IGDB,
		upstreamRAWG:   &cfg.Upstreams.RAWG,
		upstreamTwitch: &cfg.Upstreams.Twitch,
	} {
		do.ProvideNamedValue(i, name, httpclient.New(cc, name, metrics, logger))
	}
	do.ProvideValue(i, credentials.NewStore(cfg.Credentials))
	do.ProvideValue[ports.HealthRegistry](i, health.New())

	do.Provide(i, func(i do.Injector) (*acl.IGDBClient, error) {
		return acl.NewIGDBClient(
			do.MustInvokeNamed[*httpclient.Client](i, upstreamIGDB),
			do.MustInvoke[*credentials.Store](i), metrics, logger), nil
	})
	do.Provide(i, func(i do.Injector) (*acl.RAWGClient, error) {
		return acl.NewRAWGClient(
			do.MustInvokeNamed[*httpclient.Client](i, upstreamRAWG),
			do.MustInvoke[*credentials.Store](i), metrics, logger), nil
	})
	do.Provide(i, func(i do.Injector) (*acl.TokenIssuer, error) {
		return acl.NewTokenIssuer(
			do.MustInvokeNamed[*httpclient.Client](i, upstreamTwitch),
			do.MustInvoke[*credentials.Store](i), logger), nil
	})

	do.Provide(i, func(i do.Injector) (ports.CatalogService, error) {
		return app.NewCatalogService(
			do.MustInvoke[*acl.IGDBClient](i),
			do.MustInvoke[*acl.RAWGClient](i),
			do.MustInvoke[*acl.TokenIssuer](i),
			logger), nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		svc := do.MustInvoke[ports.CatalogService](i)
		routes := adapthttp.Routes{
			Catalog: handlers.NewCatalogHandler(svc),
			Auth:    handlers.NewAuthHandler(svc),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}
		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return i
}

// registerHealthChecks adds every upstream adapter to the readiness registry.
func registerHealthChecks(i do.Injector) error {
	registry, err := do.Invoke[ports.HealthRegistry](i)
	if err != nil {
		return err
	}
	igdb, err := do.Invoke[*acl.IGDBClient](i)
	if err != nil {
		return err
	}
	rawg, err := do.Invoke[*acl.RAWGClient](i)
	if err != nil {
		return err
	}
	issuer, err := do.Invoke[*acl.TokenIssuer](i)
	if err != nil {
		return err
	}
	for _, c := range []ports.HealthChecker{igdb, rawg, issuer} {
		registry.Register(c)
	}
	return nil
}
