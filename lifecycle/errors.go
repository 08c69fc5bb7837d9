package lifecycle

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned by the store for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// InvalidTransitionError is returned when an operation is not legal in the
// session's current state, e.g. book() before every prebook has settled.
type InvalidTransitionError struct {
	Op    string
	State State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s is not allowed in state %q", e.Op, e.State)
}

// ValidationError is a client-side precondition failure. It is raised before
// any network call and never reaches the supplier.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
