package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/dto"
	"github.com/CodeJamboree/action-builder/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and names field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestIdentifierRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.IdentifierRequest
		wantField string
	}{
		{name: "action only", req: dto.IdentifierRequest{Action: "ADD"}},
		{name: "all fields", req: dto.IdentifierRequest{Namespace: []string{"todo"}, Action: "LOAD", SubStages: []string{"page"}}},
		{name: "empty action", req: dto.IdentifierRequest{Namespace: []string{"todo"}}, wantField: "action"},
		{name: "whitespace action", req: dto.IdentifierRequest{Action: "  "}, wantField: "action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestIdentifierRequest_NamespacePresence(t *testing.T) {
	t.Parallel()

	var absent, empty dto.IdentifierRequest
	if err := json.Unmarshal([]byte(`{"action":"ADD"}`), &absent); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"namespace":[],"action":"ADD"}`), &empty); err != nil {
		t.Fatal(err)
	}

	if absent.ToFormatRequest().Namespace != nil {
		t.Errorf("absent namespace = %v, want nil", absent.ToFormatRequest().Namespace)
	}
	if ns := empty.ToFormatRequest().Namespace; ns == nil || len(ns) != 0 {
		t.Errorf("empty namespace = %#v, want non-nil empty slice", ns)
	}
}

func TestConstructActionRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.ConstructActionRequest{Type: "todo 📝 ADD"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.ConstructActionRequest{Payload: json.RawMessage(`{}`)}).Validate(), "type")
}

func TestConstructBatchRequest(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.ConstructBatchRequest{}).Validate(), "actions")

	var req dto.ConstructBatchRequest
	body := `{"actions":[{"type":"todo 📝 ADD","payload":{"text":"milk"}},{"type":""}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	got := req.ToConstructRequests()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Type != "todo 📝 ADD" || string(got[0].Payload) != `{"text":"milk"}` {
		t.Errorf("item 0 = %+v", got[0])
	}
	if got[1].Payload != nil {
		t.Errorf("item 1 payload = %s, want nil", got[1].Payload)
	}
}
