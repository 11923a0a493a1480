package action

import "slices"

// Namespace binds an identifier prefix once and derives identifiers and
// creators under it. A Namespace is an immutable value.
type Namespace struct {
	fragments []string
	prefix    string
}

// NewNamespace captures the given fragments. With no fragments, identifiers
// carry no prefix at all.
func NewNamespace(fragments ...string) Namespace {
	fs := slices.Clone(fragments)
	return Namespace{fragments: fs, prefix: Prefix(fs)}
}

// Prefix returns the formatted prefix, including its trailing space.
func (n Namespace) Prefix() string {
	return n.prefix
}

// Fragments returns a copy of the namespace fragments.
func (n Namespace) Fragments() []string {
	return slices.Clone(n.fragments)
}

// Type returns the identifier for action and its sub-stages.
func (n Namespace) Type(action string, subStages ...string) string {
	return Format(n.prefix, action, subStages)
}

// Build returns an untyped creator for action and its sub-stages.
func (n Namespace) Build(action string, subStages ...string) Creator[any] {
	return BuildOf[any](n, action, subStages...)
}

// SubAction returns a factory for creators scoped below action/subStages.
// Each call to SubAction.Type or Stage appends one more stage name.
func (n Namespace) SubAction(action string, subStages ...string) SubAction {
	return SubAction{ns: n, action: action, path: slices.Clone(subStages)}
}

// BuildOf returns a creator with payload type P for action and its
// sub-stages under ns.
func BuildOf[P any](ns Namespace, action string, subStages ...string) Creator[P] {
	return NewCreator[P](ns.Type(action, subStages...))
}

// SubAction is a curried creator factory bound to a namespace, an action
// name and a sub-stage path. The lifecycle builders call it once per stage.
type SubAction struct {
	ns     Namespace
	action string
	path   []string
}

// Type returns the identifier of the given trailing stage.
func (s SubAction) Type(stage string) string {
	path := make([]string, 0, len(s.path)+1)
	path = append(path, s.path...)
	path = append(path, stage)
	return s.ns.Type(s.action, path...)
}

// Stage returns a creator with payload type P for the given trailing stage.
func Stage[P any](s SubAction, stage string) Creator[P] {
	return NewCreator[P](s.Type(stage))
}
