package domain

import (
	"errors"

	"github.com/finledger/finance-ledger/internal/apperrors"
)

// ResultKind discriminates the variants of a ServiceResult.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultNotFound
	ResultValidationError
	ResultBusinessError
	ResultSystemError
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultNotFound:
		return "not_found"
	case ResultValidationError:
		return "validation_error"
	case ResultBusinessError:
		return "business_error"
	case ResultSystemError:
		return "system_error"
	}
	return "unknown"
}

// ServiceResult is the closed outcome type every core operation returns in
// lieu of thrown errors. Exactly one variant is populated per value; callers
// switch on Kind and must handle all five variants.
//
// Collection-returning operations never use NotFound for an empty collection;
// that is Success with an empty slice.
type ServiceResult[T any] struct {
	kind    ResultKind
	data    T
	fields  map[string]string
	message string
	code    string
	err     error
}

// OK builds the Success variant carrying data.
func OK[T any](data T) ServiceResult[T] {
	return ServiceResult[T]{kind: ResultSuccess, data: data}
}

// NotFound builds the NotFound variant.
func NotFound[T any]() ServiceResult[T] {
	return ServiceResult[T]{kind: ResultNotFound}
}

// Invalid builds the ValidationError variant. No mutation was attempted.
func Invalid[T any](fields map[string]string) ServiceResult[T] {
	return ServiceResult[T]{kind: ResultValidationError, fields: fields}
}

// InvalidField is shorthand for a single-field validation failure.
func InvalidField[T any](field, reason string) ServiceResult[T] {
	return Invalid[T](map[string]string{field: reason})
}

// BusinessErr builds the BusinessError variant. No partial state change occurred.
func BusinessErr[T any](message, code string) ServiceResult[T] {
	return ServiceResult[T]{kind: ResultBusinessError, message: message, code: code}
}

// SystemErr builds the SystemError variant; the caller should treat the
// failure as retryable and opaque.
func SystemErr[T any](err error) ServiceResult[T] {
	return ServiceResult[T]{kind: ResultSystemError, err: err}
}

// Classify converts a lower-level error into the matching result variant.
// It is the single exception-to-result boundary adapter: sentinel errors map
// to their variant, and a resilience ExecutionError is unwrapped to its
// original cause first so a wrapped NotFound stays NotFound rather than
// degrading to SystemError.
func Classify[T any](err error) ServiceResult[T] {
	var execErr *apperrors.ExecutionError
	if errors.As(err, &execErr) {
		err = execErr.Cause()
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFound[T]()
	case errors.Is(err, apperrors.ErrValidation):
		return InvalidField[T]("request", err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		return BusinessErr[T](err.Error(), "conflict")
	case errors.Is(err, apperrors.ErrBusiness):
		return BusinessErr[T](err.Error(), "business_rule")
	}
	return SystemErr[T](err)
}

// Kind returns the populated variant's discriminator.
func (r ServiceResult[T]) Kind() ResultKind { return r.kind }

// IsSuccess reports whether the result is the Success variant.
func (r ServiceResult[T]) IsSuccess() bool { return r.kind == ResultSuccess }

// Data returns the Success payload; the zero value for other variants.
func (r ServiceResult[T]) Data() T { return r.data }

// FieldErrors returns the per-field messages of a ValidationError.
func (r ServiceResult[T]) FieldErrors() map[string]string { return r.fields }

// Message returns the BusinessError message.
func (r ServiceResult[T]) Message() string { return r.message }

// Code returns the BusinessError code.
func (r ServiceResult[T]) Code() string { return r.code }

// Err returns the SystemError cause.
func (r ServiceResult[T]) Err() error { return r.err }
