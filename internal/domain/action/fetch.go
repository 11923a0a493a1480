package action

// Stage names of a fetch lifecycle, in lifecycle order.
const (
	StageTrigger = "TRIGGER"
	StageRequest = "REQUEST"
	StageSuccess = "SUCCESS"
	StageFailure = "FAILURE"
	StageFulfill = "FULFILL"
)

// FetchStages lists the fetch lifecycle stages in order.
var FetchStages = []string{StageTrigger, StageRequest, StageSuccess, StageFailure, StageFulfill}

// FetchGroup bundles the five creators of a fetch lifecycle. The group acts
// as its Trigger creator through New, Empty, Type and Match.
//
// By convention Request, Success and Fulfill carry a subset of Trigger's
// fields and Failure carries an ErrorPayload; the untyped Builder.Fetch
// applies exactly that default for Failure.
type FetchGroup[T, Rq, S, F, Fl any] struct {
	Trigger Creator[T]
	Request Creator[Rq]
	Success Creator[S]
	Failure Creator[F]
	Fulfill Creator[Fl]

	TriggerType string
	RequestType string
	SuccessType string
	FailureType string
	FulfillType string
}

// NewFetch builds a fetch group from a sub-action factory. Each stage gets
// its own payload type.
func NewFetch[T, Rq, S, F, Fl any](sub SubAction) FetchGroup[T, Rq, S, F, Fl] {
	g := FetchGroup[T, Rq, S, F, Fl]{
		Trigger: Stage[T](sub, StageTrigger),
		Request: Stage[Rq](sub, StageRequest),
		Success: Stage[S](sub, StageSuccess),
		Failure: Stage[F](sub, StageFailure),
		Fulfill: Stage[Fl](sub, StageFulfill),
	}
	g.TriggerType = g.Trigger.Type()
	g.RequestType = g.Request.Type()
	g.SuccessType = g.Success.Type()
	g.FailureType = g.Failure.Type()
	g.FulfillType = g.Fulfill.Type()
	return g
}

// New is the group's default call; it behaves exactly like Trigger.New.
func (g FetchGroup[T, Rq, S, F, Fl]) New(payload T) Action[T] {
	return g.Trigger.New(payload)
}

// Empty behaves exactly like Trigger.Empty.
func (g FetchGroup[T, Rq, S, F, Fl]) Empty() Action[T] {
	return g.Trigger.Empty()
}

// Type returns the trigger identifier.
func (g FetchGroup[T, Rq, S, F, Fl]) Type() string {
	return g.TriggerType
}

// Match reports whether a is a trigger action of this group.
func (g FetchGroup[T, Rq, S, F, Fl]) Match(a Typed) bool {
	return g.Trigger.Match(a)
}

// Types returns the five identifiers in lifecycle order.
func (g FetchGroup[T, Rq, S, F, Fl]) Types() []string {
	return []string{g.TriggerType, g.RequestType, g.SuccessType, g.FailureType, g.FulfillType}
}
