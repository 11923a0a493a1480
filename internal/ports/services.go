package ports

import (
	"context"
	"encoding/json"

	"github.com/CodeJamboree/action-builder/internal/domain/action"
	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
)

// CatalogService defines the service port for reading the action catalog and
// constructing actions from it. Implemented by the application layer; called
// by inbound adapters (HTTP handlers, CLI).
type CatalogService interface {
	// Catalog returns the catalog currently in use.
	Catalog(ctx context.Context) (*catalog.Catalog, error)

	// Lookup returns the catalog entry for an identifier.
	// Returns domain.ErrNotFound if the identifier is not declared.
	Lookup(ctx context.Context, identifier string) (catalog.Entry, error)

	// Format derives an identifier without consulting the declarations.
	// Returns domain.ErrValidation if the action name is blank.
	Format(ctx context.Context, req FormatRequest) (string, error)

	// Construct stamps payload with a declared identifier. A nil or JSON
	// null payload yields an action without payload. The payload is passed
	// through unparsed.
	// Returns domain.ErrNotFound if the identifier is not declared.
	Construct(ctx context.Context, identifier string, payload json.RawMessage) (action.Action[json.RawMessage], error)

	// ConstructBatch constructs several actions concurrently with partial
	// success semantics: per-item failures are collected in
	// BatchResult.Errors. Returns a hard error only for request-level
	// failures (empty or oversized batch).
	ConstructBatch(ctx context.Context, reqs []ConstructRequest) (*BatchResult, error)

	// Reload re-reads the catalog source and swaps in the rebuilt catalog.
	// The previous catalog stays in use when loading or building fails.
	Reload(ctx context.Context) error
}

// FormatRequest describes an ad-hoc identifier. A nil Namespace selects the
// catalog's namespace; an empty non-nil Namespace selects no namespace.
type FormatRequest struct {
	Namespace []string
	Action    string
	SubStages []string
}

// ConstructRequest pairs an identifier with its raw payload.
type ConstructRequest struct {
	Type    string
	Payload json.RawMessage
}

// ConstructError records a single failed item within a batch.
type ConstructError struct {
	Index int
	Type  string
	Err   error
}

// BatchResult holds the outcomes of a batch construction.
// Actions holds successful items in request order; Errors holds failures.
type BatchResult struct {
	Actions []action.Action[json.RawMessage]
	Errors  []ConstructError
}
