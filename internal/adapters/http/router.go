// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/dto"
	"github.com/CodeJamboree/action-builder/internal/adapters/http/handlers"
	"github.com/CodeJamboree/action-builder/internal/domain"
)

var errMethodNotAllowed = errors.New("method not allowed")

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Action  *handlers.ActionHandler
	Health  *handlers.HealthHandler
}

// NewRouter registers every route on a chi router. Middleware is applied
// globally, outermost first. Unknown routes and methods answer with problem
// responses.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/actions", h.Catalog.ListActions)
		r.Get("/actions/lookup", h.Catalog.LookupAction)
		r.Post("/actions", h.Action.Construct)
		r.Post("/actions/batch", h.Action.ConstructBatch)

		r.Post("/identifiers", h.Catalog.FormatIdentifier)
		r.Post("/catalog/reload", h.Catalog.Reload)
	})

	return r
}
