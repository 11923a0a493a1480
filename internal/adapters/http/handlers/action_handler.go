package handlers

import (
	"net/http"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/dto"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

// ActionHandler constructs actions for declared identifiers.
type ActionHandler struct {
	service ports.CatalogService
}

// NewActionHandler creates an ActionHandler backed by service.
func NewActionHandler(service ports.CatalogService) *ActionHandler {
	return &ActionHandler{service: service}
}

// Construct handles POST /api/v1/actions.
func (h *ActionHandler) Construct(w http.ResponseWriter, r *http.Request) {
	var req dto.ConstructActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	act, err := h.service.Construct(r.Context(), req.Type, req.Payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, act)
}

// ConstructBatch handles POST /api/v1/actions/batch. Item failures are
// reported in the body; the status is 200 whenever the batch was processed.
func (h *ActionHandler) ConstructBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.ConstructBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.ConstructBatch(r.Context(), req.ToConstructRequests())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBatchResponse(result))
}
