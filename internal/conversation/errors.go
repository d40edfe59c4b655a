package conversation

import "errors"

var (
	// ErrEmptyMessage rejects blank chat input before any remote call.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrThreadNotFound means no local state exists for the thread.
	ErrThreadNotFound = errors.New("conversation not found")
)

// RejectionError is returned when the safety filter rejects input; no remote
// call is made in that case.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}
