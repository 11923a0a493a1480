package catalogapi

import "github.com/CodeJamboree/action-builder/internal/domain/catalog"

// CatalogDTO is the wire form served by the catalog API.
type CatalogDTO struct {
	Namespace []string    `json:"namespace"`
	Actions   []ActionDTO `json:"actions"`
}

// ActionDTO is one declared action on the wire.
type ActionDTO struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind,omitempty"`
	SubStages []string `json:"sub_stages,omitempty"`
}

// ToSpec translates the wire form into catalog declarations.
func ToSpec(dto CatalogDTO) catalog.Spec {
	spec := catalog.Spec{
		Namespace: dto.Namespace,
		Actions:   make([]catalog.Declaration, 0, len(dto.Actions)),
	}
	for _, a := range dto.Actions {
		spec.Actions = append(spec.Actions, catalog.Declaration{
			Name:      a.Name,
			Kind:      catalog.Kind(a.Kind),
			SubStages: a.SubStages,
		})
	}
	return spec
}
