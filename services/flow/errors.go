package flow

import "fmt"

// FlowError is a typed error for session-level failures.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSessionNotFound is returned when a session id has no live state in the
// cache (never created, expired, or cancelled).
var ErrSessionNotFound = &FlowError{
	Code:    "sessionNotFound",
	Message: "booking session not found or expired",
}

// NewStepIncompleteError marks a forward navigation blocked by the gating
// predicate.
func NewStepIncompleteError(step string) error {
	return &FlowError{
		Code:    "stepIncomplete",
		Message: fmt.Sprintf("current step %q is not complete", step),
	}
}
