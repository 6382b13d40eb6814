package nav

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrInvalidArgument means malformed input: an invalid view payload, an
	// unknown transition, or bad spring parameters. Nothing was changed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation means the call is not allowed in the current state,
	// such as popping the root view. Nothing was changed.
	ErrInvalidOperation = errors.New("invalid operation")
)

// OpError reports which controller operation failed and why.
type OpError struct {
	Op     string // "push", "pop", "pop_to_root", "set_views", "new"
	Err    error  // ErrInvalidArgument or ErrInvalidOperation
	Detail string // human-readable reason
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("navctl: %s: %v: %s", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("navctl: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func invalidArgument(op, format string, args ...any) *OpError {
	return &OpError{Op: op, Err: ErrInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

func invalidOperation(op, format string, args ...any) *OpError {
	return &OpError{Op: op, Err: ErrInvalidOperation, Detail: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err is an ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidOperation reports whether err is an ErrInvalidOperation.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}
