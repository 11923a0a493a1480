// Package bootstrap registers the dependencies shared by the server and the
// command line tool on a samber/do injector: telemetry, the catalog source
// selected by configuration, the catalog service and the health registry.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/CodeJamboree/action-builder/internal/adapters/catalogfile"
	"github.com/CodeJamboree/action-builder/internal/adapters/clients/catalogapi"
	"github.com/CodeJamboree/action-builder/internal/app"
	"github.com/CodeJamboree/action-builder/internal/platform/config"
	"github.com/CodeJamboree/action-builder/internal/platform/health"
	"github.com/CodeJamboree/action-builder/internal/platform/httpclient"
	"github.com/CodeJamboree/action-builder/internal/platform/logging"
	"github.com/CodeJamboree/action-builder/internal/platform/telemetry"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

// Telemetry bundles the OpenTelemetry providers. Every field is nil when
// telemetry is disabled.
type Telemetry struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	Metrics *telemetry.Metrics
}

// InitTelemetry starts the tracer and meter providers described by cfg.
func InitTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &Telemetry{tracer: tp, meter: mp, Metrics: metrics}, nil
}

// Shutdown flushes both providers. Nil-safe.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		if err := t.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.meter != nil {
		if err := t.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Register provides cfg, logger and metrics along with:
//
//   - ports.CatalogSource: *catalogfile.Source or *catalogapi.Client
//   - *app.CatalogService and ports.CatalogService
//   - ports.HealthRegistry holding the service and, when remote, the client
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(i do.Injector) (ports.CatalogSource, error) {
		return newSource(cfg, logger, do.MustInvoke[*telemetry.Metrics](i))
	})

	do.Provide(injector, func(i do.Injector) (*app.CatalogService, error) {
		source := do.MustInvoke[ports.CatalogSource](i)
		return app.NewCatalogService(source, cfg.Catalog, do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogService, error) {
		return do.Invoke[*app.CatalogService](i)
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*app.CatalogService](i))
		if checker, ok := do.MustInvoke[ports.CatalogSource](i).(ports.HealthChecker); ok {
			registry.Register(checker)
		}
		return registry, nil
	})
}

func newSource(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) (ports.CatalogSource, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalogfile.New(cfg.Catalog.Path, logger), nil
	case config.SourceRemote:
		hc := httpclient.New(&cfg.Client, catalogapi.ServiceName, metrics, logger)
		return catalogapi.New(hc, cfg.Client.Path, logger), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// WatchCatalog reloads the service whenever a file source changes. Other
// sources are not watched and WatchCatalog returns nil for them.
func WatchCatalog(ctx context.Context, source ports.CatalogSource, svc ports.CatalogService, logger *slog.Logger) error {
	fs, ok := source.(*catalogfile.Source)
	if !ok {
		return nil
	}
	logger = logging.OrDiscard(logger)
	return fs.Watch(ctx, func(ctx context.Context) {
		if err := svc.Reload(ctx); err != nil {
			logger.WarnContext(ctx, "keeping previous catalog after failed reload",
				slog.String("path", fs.Path()),
				slog.Any(logging.KeyError, err),
			)
		}
	})
}
