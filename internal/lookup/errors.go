package lookup

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is reported when a report is requested without a stored number.
var ErrSessionExpired = errors.New("session expired")

// UnexpectedError wraps an internal fault recovered while handling a turn.
type UnexpectedError struct {
	Op    string
	Cause any
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("lookup: unexpected failure in %s: %v", e.Op, e.Cause)
}

// Unwrap exposes the cause when it was an error value.
func (e *UnexpectedError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

func (e *UnexpectedError) Code() string { return "UNEXPECTED" }
