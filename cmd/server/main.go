// Command server runs the Continuum gateway. APP_PROFILE picks the
// configuration profile (local, dev, prod); SIGINT or SIGTERM drains
// in-flight requests and flushes telemetry before exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/continuum/internal/adapters/http"
	"github.com/jsamuelsen11/continuum/internal/platform/config"
	"github.com/jsamuelsen11/continuum/internal/platform/logging"
	"github.com/jsamuelsen11/continuum/internal/platform/secrets"
	"github.com/jsamuelsen11/continuum/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "continuum:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set (local, dev or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if err := secrets.Apply(ctx, cfg, logger); err != nil {
		return fmt.Errorf("loading secrets: %w", err)
	}

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	injector := newInjector(cfg, logger, providers.Metrics)
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring gateway: %w", err)
	}
	if err := registerHealthChecks(injector); err != nil {
		return fmt.Errorf("wiring health checks: %w", err)
	}

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown requested")
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := <-served; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
