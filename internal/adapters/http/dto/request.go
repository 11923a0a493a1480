package dto

import (
	"encoding/json"
	"strings"

	"github.com/CodeJamboree/action-builder/internal/domain"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

// IdentifierRequest is the body of POST /api/v1/identifiers. A missing
// namespace selects the catalog's namespace; an empty array selects none.
type IdentifierRequest struct {
	Namespace []string `json:"namespace"`
	Action    string   `json:"action"`
	SubStages []string `json:"sub_stages,omitempty"`
}

// Validate checks that an action name is present.
func (r *IdentifierRequest) Validate() error {
	if strings.TrimSpace(r.Action) == "" {
		return domain.NewValidationError("action", domain.MsgRequired)
	}
	return nil
}

// ToFormatRequest converts the body to a ports.FormatRequest.
func (r *IdentifierRequest) ToFormatRequest() ports.FormatRequest {
	return ports.FormatRequest{
		Namespace: r.Namespace,
		Action:    r.Action,
		SubStages: r.SubStages,
	}
}

// ConstructActionRequest is the body of POST /api/v1/actions and one item of
// a batch. The payload is passed through without inspection.
type ConstructActionRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks that an action type is present.
func (r *ConstructActionRequest) Validate() error {
	if r.Type == "" {
		return domain.NewValidationError("type", domain.MsgRequired)
	}
	return nil
}

// ConstructBatchRequest is the body of POST /api/v1/actions/batch.
type ConstructBatchRequest struct {
	Actions []ConstructActionRequest `json:"actions"`
}

// Validate checks that the batch is non-empty. Individual items are checked
// by the service so that one bad item does not fail the batch.
func (r *ConstructBatchRequest) Validate() error {
	if len(r.Actions) == 0 {
		return domain.NewValidationError("actions", domain.MsgRequired)
	}
	return nil
}

// ToConstructRequests converts the batch items to service requests.
func (r *ConstructBatchRequest) ToConstructRequests() []ports.ConstructRequest {
	reqs := make([]ports.ConstructRequest, len(r.Actions))
	for i, a := range r.Actions {
		reqs[i] = ports.ConstructRequest{Type: a.Type, Payload: a.Payload}
	}
	return reqs
}
