package handlers

import (
	"net/http"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/dto"
	"github.com/CodeJamboree/action-builder/internal/domain"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

// CatalogHandler serves the identifiers of the live catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a CatalogHandler backed by service.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListActions handles GET /api/v1/actions.
func (h *CatalogHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	cat, err := h.service.Catalog(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCatalogResponse(cat))
}

// LookupAction handles GET /api/v1/actions/lookup?type={identifier}.
// Identifiers contain spaces and slashes, so they travel as a query value.
func (h *CatalogHandler) LookupAction(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("type")
	if id == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("type", domain.MsgRequired))
		return
	}

	entry, err := h.service.Lookup(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEntryResponse(entry))
}

// FormatIdentifier handles POST /api/v1/identifiers.
func (h *CatalogHandler) FormatIdentifier(w http.ResponseWriter, r *http.Request) {
	var req dto.IdentifierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.service.Format(r.Context(), req.ToFormatRequest())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.IdentifierResponse{Type: id})
}

// Reload handles POST /api/v1/catalog/reload.
func (h *CatalogHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reload(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
