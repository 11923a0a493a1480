package ports

import (
	"context"

	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
)

// CatalogSource loads the declared catalog. Implemented by the file and
// remote adapters; called by the application layer on startup and reload.
type CatalogSource interface {
	// Name identifies the source in logs and metrics (e.g., "file", "catalog-api").
	Name() string

	// Load returns the current declarations. Implementations translate their
	// wire format into catalog types and must not build identifiers.
	Load(ctx context.Context) (catalog.Spec, error)
}
