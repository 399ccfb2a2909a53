package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusiness indicates that a domain rule was violated (illegal state transition,
// conflicting mutation) without any partial state change.
var ErrBusiness = errors.New("business rule violation")

// ExecutionError wraps a failure that occurred inside a resilience wrapper
// (timeout/retry executor). The original cause stays reachable through Unwrap,
// so errors.Is/errors.As classification keeps working across the wrapper.
type ExecutionError struct {
	Op  string
	Err error
}

// NewExecutionError wraps err as the failure of the named operation.
func NewExecutionError(op string, err error) *ExecutionError {
	return &ExecutionError{Op: op, Err: err}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution of %s failed: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Cause returns the innermost non-ExecutionError error in the chain.
// Nested wrappers (retry around timeout) collapse to the original failure.
func (e *ExecutionError) Cause() error {
	cause := e.Err
	for {
		var inner *ExecutionError
		if !errors.As(cause, &inner) {
			return cause
		}
		cause = inner.Err
	}
}
