// Package catalog expands action declarations into the identifiers derived by
// the action package and indexes them for lookup.
package catalog

import (
	"fmt"

	"github.com/CodeJamboree/action-builder/internal/domain"
	"github.com/CodeJamboree/action-builder/internal/domain/action"
)

// Entry is one identifier of a catalog. Stage is empty for single actions.
type Entry struct {
	Type   string
	Action string
	Kind   Kind
	Stage  string
}

// Creator returns an untyped creator for the entry's identifier.
func (e Entry) Creator() action.Creator[any] {
	return action.NewCreator[any](e.Type)
}

// Catalog is an immutable, indexed set of entries built from a Spec.
type Catalog struct {
	namespace action.Namespace
	entries   []Entry
	index     map[string]int
}

// Build expands every declaration of spec with an action.Builder bound to
// spec.Namespace. Declarations are validated; an identifier produced twice
// within the catalog yields domain.ErrConflict.
func Build(spec Spec) (*Catalog, error) {
	b := action.New(spec.Namespace...)
	c := &Catalog{
		namespace: b.Namespace(),
		index:     make(map[string]int),
	}

	for i := range spec.Actions {
		d := &spec.Actions[i]
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		for _, e := range expand(b, d) {
			if _, dup := c.index[e.Type]; dup {
				return nil, fmt.Errorf("identifier %q declared more than once: %w", e.Type, domain.ErrConflict)
			}
			c.index[e.Type] = len(c.entries)
			c.entries = append(c.entries, e)
		}
	}

	return c, nil
}

func expand(b *action.Builder, d *Declaration) []Entry {
	kind := d.kind()

	var types, stages []string
	switch kind {
	case KindFetch:
		types, stages = b.Fetch(d.Name, d.SubStages...).Types(), action.FetchStages
	case KindProgress:
		types, stages = b.Progress(d.Name, d.SubStages...).Types(), action.ProgressStages
	default:
		return []Entry{{Type: b.Type(d.Name, d.SubStages...), Action: d.Name, Kind: kind}}
	}

	entries := make([]Entry, len(types))
	for i, typ := range types {
		entries[i] = Entry{Type: typ, Action: d.Name, Kind: kind, Stage: stages[i]}
	}
	return entries
}

// Namespace returns the namespace the catalog was built under.
func (c *Catalog) Namespace() action.Namespace {
	return c.namespace
}

// Entries returns a copy of all entries in declaration and lifecycle order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry for an identifier.
func (c *Catalog) Lookup(identifier string) (Entry, bool) {
	i, ok := c.index[identifier]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of identifiers in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
