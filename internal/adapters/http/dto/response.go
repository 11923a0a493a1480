// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"

	"github.com/CodeJamboree/action-builder/internal/domain/action"
	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

// EntryResponse represents one catalog identifier.
type EntryResponse struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Kind   string `json:"kind"`
	Stage  string `json:"stage,omitempty"`
}

// ToEntryResponse converts a catalog entry to its HTTP form.
func ToEntryResponse(e catalog.Entry) EntryResponse {
	return EntryResponse{
		Type:   e.Type,
		Action: e.Action,
		Kind:   e.Kind.String(),
		Stage:  e.Stage,
	}
}

// CatalogResponse lists every identifier of the live catalog.
type CatalogResponse struct {
	Namespace []string        `json:"namespace"`
	Actions   []EntryResponse `json:"actions"`
	Count     int             `json:"count"`
}

// ToCatalogResponse converts a catalog to its HTTP form.
func ToCatalogResponse(c *catalog.Catalog) CatalogResponse {
	entries := c.Entries()
	items := make([]EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = ToEntryResponse(e)
	}
	return CatalogResponse{
		Namespace: c.Namespace().Fragments(),
		Actions:   items,
		Count:     len(items),
	}
}

// IdentifierResponse carries a derived identifier.
type IdentifierResponse struct {
	Type string `json:"type"`
}

// ActionResponse is the wire envelope of a constructed action.
type ActionResponse = action.Action[json.RawMessage]

// BatchResponse reports the outcome of a batch construction.
type BatchResponse struct {
	Actions   []ActionResponse `json:"actions"`
	Errors    []BatchErrorItem `json:"errors"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// BatchErrorItem is one failed item of a batch.
type BatchErrorItem struct {
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ToBatchResponse converts a ports.BatchResult to its HTTP form.
func ToBatchResponse(result *ports.BatchResult) BatchResponse {
	actions := result.Actions
	if actions == nil {
		actions = []ActionResponse{}
	}

	errs := make([]BatchErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchErrorItem{
			Index:   e.Index,
			Type:    e.Type,
			Message: e.Err.Error(),
		}
	}

	return BatchResponse{
		Actions:   actions,
		Errors:    errs,
		Total:     len(result.Actions) + len(result.Errors),
		Succeeded: len(result.Actions),
		Failed:    len(result.Errors),
	}
}
