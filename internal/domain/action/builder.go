package action

// Builder is the entry point: it binds a namespace and builds single
// creators, fetch groups and progress groups under it. Build is the default
// operation.
type Builder struct {
	ns Namespace
}

// New returns a Builder for the given namespace fragments.
func New(fragments ...string) *Builder {
	return &Builder{ns: NewNamespace(fragments...)}
}

// Namespace returns the namespace builder backing b.
func (b *Builder) Namespace() Namespace {
	return b.ns
}

// Type returns the identifier for action and its sub-stages.
func (b *Builder) Type(action string, subStages ...string) string {
	return b.ns.Type(action, subStages...)
}

// Build returns an untyped creator for action and its sub-stages.
func (b *Builder) Build(action string, subStages ...string) Creator[any] {
	return b.ns.Build(action, subStages...)
}

// Fetch returns a fetch group with default payload types: untyped stages
// and an ErrorPayload failure.
func (b *Builder) Fetch(action string, subStages ...string) FetchGroup[any, any, any, ErrorPayload, any] {
	return FetchOf[any, any, any, ErrorPayload, any](b, action, subStages...)
}

// Progress returns a progress group with the default ProgressPayload and
// AbortPayload types.
func (b *Builder) Progress(action string, subStages ...string) ProgressGroup[ProgressPayload, AbortPayload] {
	return ProgressOf[ProgressPayload, AbortPayload](b, action, subStages...)
}

// TypedBuild returns a creator with payload type P. It is the typed form of
// Builder.Build.
func TypedBuild[P any](b *Builder, action string, subStages ...string) Creator[P] {
	return BuildOf[P](b.ns, action, subStages...)
}

// FetchOf returns a fetch group with an explicit payload type per stage.
func FetchOf[T, Rq, S, F, Fl any](b *Builder, action string, subStages ...string) FetchGroup[T, Rq, S, F, Fl] {
	return NewFetch[T, Rq, S, F, Fl](b.ns.SubAction(action, subStages...))
}

// ProgressOf returns a progress group with explicit payload types.
func ProgressOf[P, A any](b *Builder, action string, subStages ...string) ProgressGroup[P, A] {
	return NewProgress[P, A](b.ns.SubAction(action, subStages...))
}
