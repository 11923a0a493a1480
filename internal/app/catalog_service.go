// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	appctx "github.com/CodeJamboree/action-builder/internal/app/context"
	"github.com/CodeJamboree/action-builder/internal/app/fanout"
	"github.com/CodeJamboree/action-builder/internal/domain"
	"github.com/CodeJamboree/action-builder/internal/domain/action"
	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
	"github.com/CodeJamboree/action-builder/internal/platform/config"
	"github.com/CodeJamboree/action-builder/internal/platform/logging"
	"github.com/CodeJamboree/action-builder/internal/platform/telemetry"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

var (
	_ ports.CatalogService = (*CatalogService)(nil)
	_ ports.HealthChecker  = (*CatalogService)(nil)
)

const (
	catalogCacheKey = "catalog"
	unknownKind     = "unknown"
)

// CatalogService implements ports.CatalogService over the catalog loaded from
// a ports.CatalogSource. The live catalog is swapped atomically on Reload;
// within one request every read sees the same catalog.
type CatalogService struct {
	source   ports.CatalogSource
	current  *appctx.SafeRef[*catalog.Catalog]
	snapshot *appctx.DataProvider[*catalog.Catalog]
	workers  int
	maxBatch int
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewCatalogService creates a service reading from source. No catalog is
// loaded until the first Reload. metrics and logger may be nil.
func NewCatalogService(source ports.CatalogSource, cfg config.CatalogConfig, metrics *telemetry.Metrics, logger *slog.Logger) *CatalogService {
	s := &CatalogService{
		source:   source,
		current:  appctx.NewRef[*catalog.Catalog](nil),
		workers:  max(cfg.FanoutWorkers, 1),
		maxBatch: max(cfg.MaxBatch, 1),
		metrics:  metrics,
		logger:   logging.OrDiscard(logger),
	}
	s.snapshot = appctx.NewDataProvider(catalogCacheKey, s.live)
	return s
}

func (s *CatalogService) live(context.Context) (*catalog.Catalog, error) {
	cat := s.current.Get()
	if cat == nil {
		return nil, fmt.Errorf("catalog not loaded: %w", domain.ErrUnavailable)
	}
	return cat, nil
}

// Catalog returns the live catalog, memoized per request.
func (s *CatalogService) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	return s.snapshot.Get(ctx)
}

// Lookup returns the entry declared for identifier.
func (s *CatalogService) Lookup(ctx context.Context, identifier string) (catalog.Entry, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return catalog.Entry{}, err
	}
	return lookup(cat, identifier)
}

func lookup(cat *catalog.Catalog, identifier string) (catalog.Entry, error) {
	entry, ok := cat.Lookup(identifier)
	if !ok {
		return catalog.Entry{}, fmt.Errorf("action type %q: %w", identifier, domain.ErrNotFound)
	}
	return entry, nil
}

// Format derives an identifier from req without requiring a declaration.
func (s *CatalogService) Format(ctx context.Context, req ports.FormatRequest) (string, error) {
	if strings.TrimSpace(req.Action) == "" {
		return "", domain.NewValidationError("action", domain.MsgRequired)
	}

	if req.Namespace != nil {
		return action.NewNamespace(req.Namespace...).Type(req.Action, req.SubStages...), nil
	}

	cat, err := s.Catalog(ctx)
	if err != nil {
		return "", err
	}
	return cat.Namespace().Type(req.Action, req.SubStages...), nil
}

// Construct builds an action for a declared identifier. An empty or JSON
// null payload yields an action without payload.
func (s *CatalogService) Construct(ctx context.Context, identifier string, payload json.RawMessage) (action.Action[json.RawMessage], error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return action.Action[json.RawMessage]{}, err
	}

	act, err := s.construct(ctx, cat, identifier, payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to construct action",
			slog.String(logging.KeyOperation, "Construct"),
			slog.String(logging.KeyActionType, identifier),
			slog.Any(logging.KeyError, err),
		)
	}
	return act, err
}

func (s *CatalogService) construct(ctx context.Context, cat *catalog.Catalog, identifier string, payload json.RawMessage) (action.Action[json.RawMessage], error) {
	entry, err := lookup(cat, identifier)
	if err != nil {
		s.metrics.RecordConstruct(ctx, unknownKind, err)
		return action.Action[json.RawMessage]{}, err
	}

	creator := action.NewCreator[json.RawMessage](entry.Type)
	s.metrics.RecordConstruct(ctx, entry.Kind.String(), nil)

	if isAbsent(payload) {
		return creator.Empty(), nil
	}
	return creator.New(payload), nil
}

func isAbsent(payload json.RawMessage) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// ConstructBatch constructs every request concurrently. Item failures are
// reported in the result; only an empty or oversized batch, or a missing
// catalog, fails the whole call.
func (s *CatalogService) ConstructBatch(ctx context.Context, reqs []ports.ConstructRequest) (*ports.BatchResult, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidationError("actions", domain.MsgRequired)
	}
	if len(reqs) > s.maxBatch {
		return nil, domain.NewValidationError("actions", fmt.Sprintf("must contain at most %d items", s.maxBatch))
	}

	// Resolved once: the request context is not safe for the workers.
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "constructing action batch", slog.Int("count", len(reqs)))

	results := fanout.Run(ctx, s.workers, reqs, func(ctx context.Context, r ports.ConstructRequest) (action.Action[json.RawMessage], error) {
		return s.construct(ctx, cat, r.Type, r.Payload)
	})

	actions, failures := fanout.Partition(results)
	out := &ports.BatchResult{Actions: actions}
	for _, f := range failures {
		out.Errors = append(out.Errors, ports.ConstructError{Index: f.Index, Type: reqs[f.Index].Type, Err: f.Err})
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "action batch partially failed",
			slog.String(logging.KeyOperation, "ConstructBatch"),
			slog.Int("failed", len(out.Errors)),
			slog.Int("succeeded", len(out.Actions)),
		)
	}
	return out, nil
}

// Reload loads the source, builds a new catalog and swaps it in. On failure
// the previous catalog stays live.
func (s *CatalogService) Reload(ctx context.Context) error {
	source := s.source.Name()

	cat, err := s.load(ctx)
	if err != nil {
		s.metrics.RecordCatalogLoad(ctx, source, 0, err)
		s.logger.ErrorContext(ctx, "failed to load catalog",
			slog.String(logging.KeyOperation, "Reload"),
			slog.String(logging.KeySource, source),
			slog.Any(logging.KeyError, err),
		)
		return fmt.Errorf("loading catalog from %s: %w", source, err)
	}

	old := s.current.Swap(cat)
	delta := cat.Len()
	if old != nil {
		delta -= old.Len()
	}
	s.metrics.RecordCatalogLoad(ctx, source, delta, nil)

	if rc := appctx.FromContext(ctx); rc != nil {
		rc.Forget(s.snapshot.Key())
	}

	s.logger.InfoContext(ctx, "catalog loaded",
		slog.String(logging.KeySource, source),
		slog.String("namespace", cat.Namespace().Prefix()),
		slog.Int("entries", cat.Len()),
	)
	return nil
}

func (s *CatalogService) load(ctx context.Context) (*catalog.Catalog, error) {
	spec, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Build(spec)
}

// Name implements ports.HealthChecker.
func (s *CatalogService) Name() string { return "catalog" }

// HealthCheck fails until a catalog has been loaded.
func (s *CatalogService) HealthCheck(ctx context.Context) error {
	_, err := s.live(ctx)
	return err
}
