package action

// ErrorPayload is the default payload of a fetch group's FAILURE stage.
type ErrorPayload struct {
	Error string `json:"error"`
}

// ProgressPayload is the default payload of a progress group's PROGRESS
// stage.
type ProgressPayload struct {
	Progress float64 `json:"progress"`
}

// AbortPayload is the default payload of a progress group's ABORT stage.
// Reason, Error or both may be set.
type AbortPayload struct {
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}
