package catalog

import (
	"fmt"
	"strings"

	"github.com/CodeJamboree/action-builder/internal/domain"
)

// Declaration names one action of a catalog. An empty Kind declares a
// single action.
type Declaration struct {
	Name      string
	Kind      Kind
	SubStages []string
}

// Spec is the declared content of a catalog: one namespace and the actions
// built under it.
type Spec struct {
	Namespace []string
	Actions   []Declaration
}

// Validate checks that the declaration can be expanded. Names and stages are
// otherwise taken verbatim.
func (d *Declaration) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if d.Kind != "" && !d.Kind.IsValid() {
		fields["kind"] = fmt.Sprintf("invalid: %q", d.Kind)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (d *Declaration) kind() Kind {
	if d.Kind == "" {
		return KindSingle
	}
	return d.Kind
}
