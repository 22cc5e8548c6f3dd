package session

import "fmt"

// PreconditionError indicates that a lifecycle operation refused to start
// because a purely local precondition wasn't met-- no network call was made.
type PreconditionError struct {
	Reason string
}

func NewPreconditionError(reason string) *PreconditionError {
	return &PreconditionError{Reason: reason}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition not met: %s", e.Reason)
}
