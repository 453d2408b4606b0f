package session

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a job is started while another one is running.
var ErrBusy = errors.New("another operation is still running")

// ErrNoDirectory is the cause carried by a PreconditionError when no
// directory has been loaded yet.
var ErrNoDirectory = errors.New("no directory selected")

// PreconditionError reports an operation invoked before its session exists.
// It is a user mistake, not a failure, and performs no I/O.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

func noDirectory(op string) error {
	return &PreconditionError{Op: op, Err: ErrNoDirectory}
}
