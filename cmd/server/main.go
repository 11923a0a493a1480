// Package main is the entry point for the action-builder service. It wires
// all dependencies using samber/do v2, loads the catalog, starts the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/CodeJamboree/action-builder/internal/adapters/http"
	"github.com/CodeJamboree/action-builder/internal/adapters/http/handlers"
	"github.com/CodeJamboree/action-builder/internal/adapters/http/middleware"
	"github.com/CodeJamboree/action-builder/internal/bootstrap"
	"github.com/CodeJamboree/action-builder/internal/platform/config"
	"github.com/CodeJamboree/action-builder/internal/platform/logging"
	"github.com/CodeJamboree/action-builder/internal/platform/telemetry"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Profile())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := bootstrap.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	bootstrap.Register(injector, cfg, logger, tel.Metrics)
	registerHTTP(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	svc := do.MustInvoke[ports.CatalogService](injector)
	source := do.MustInvoke[ports.CatalogSource](injector)

	// A failed first load is not fatal: readiness reports it and a later
	// reload can recover.
	if err := svc.Reload(ctx); err != nil {
		logger.Error("initial catalog load failed", slog.Any(logging.KeyError, err))
	}

	if cfg.Catalog.Watch {
		if err := bootstrap.WatchCatalog(ctx, source, svc, logger); err != nil {
			logger.Warn("catalog watch disabled", slog.Any(logging.KeyError, err))
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any(logging.KeyError, err))
	}
	<-serverErr

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any(logging.KeyError, err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.CatalogService](i)
		return adapthttp.Handlers{
			Catalog: handlers.NewCatalogHandler(svc),
			Action:  handlers.NewActionHandler(svc),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adapthttp.NewRouter(h, middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
