package action

// Typed is implemented by every Action regardless of its payload type.
type Typed interface {
	ActionType() string
}

// Action is a single state-transition event. Payload is nil when the
// creator was called without one.
type Action[P any] struct {
	Type    string `json:"type"`
	Payload *P     `json:"payload,omitempty"`
}

// ActionType returns the action's identifier.
func (a Action[P]) ActionType() string {
	return a.Type
}

// HasPayload reports whether the action carries a payload.
func (a Action[P]) HasPayload() bool {
	return a.Payload != nil
}

// Creator stamps payloads of type P with a fixed identifier. The zero value
// creates actions with an empty identifier; use NewCreator.
type Creator[P any] struct {
	typ string
}

// NewCreator returns a Creator for an already formatted identifier.
func NewCreator[P any](identifier string) Creator[P] {
	return Creator[P]{typ: identifier}
}

// Type returns the identifier stamped on every action.
func (c Creator[P]) Type() string {
	return c.typ
}

// New returns a fresh action carrying a copy of payload.
func (c Creator[P]) New(payload P) Action[P] {
	return Action[P]{Type: c.typ, Payload: &payload}
}

// Empty returns a fresh action without a payload.
func (c Creator[P]) Empty() Action[P] {
	return Action[P]{Type: c.typ}
}

// Match reports whether a was stamped with this creator's identifier.
// Identifiers are the only basis for equality; the payload type of a is
// not inspected.
func (c Creator[P]) Match(a Typed) bool {
	return a != nil && a.ActionType() == c.typ
}

// String implements fmt.Stringer.
func (c Creator[P]) String() string {
	return c.typ
}
