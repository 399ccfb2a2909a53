// Package resilience wraps storage-touching operations with timeout and retry
// policies. Failures surface as apperrors.ExecutionError so the original cause
// stays classifiable through errors.Is at the service boundary.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/finledger/finance-ledger/internal/apperrors"
)

// Executor runs operations under a per-attempt timeout with bounded retries.
// The zero value runs once with no timeout.
type Executor struct {
	// Attempts is the total number of tries, including the first. Values
	// below 1 are treated as 1.
	Attempts int
	// Timeout bounds each attempt. Zero means no per-attempt deadline.
	Timeout time.Duration
	// Backoff is the delay between attempts, doubled after each failure.
	Backoff time.Duration
}

// nonRetryable sentinels describe stable outcomes; retrying cannot change them.
var nonRetryable = []error{
	apperrors.ErrNotFound,
	apperrors.ErrValidation,
	apperrors.ErrDuplicate,
	apperrors.ErrBusiness,
}

func isRetryable(err error) bool {
	for _, sentinel := range nonRetryable {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}

// Run executes fn under the executor's policy. Any failure, retryable or not,
// comes back wrapped in an ExecutionError naming op; callers classify it by
// unwrapping to the original cause.
func (e Executor) Run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempts := e.Attempts
	if attempts < 1 {
		attempts = 1
	}

	backoff := e.Backoff
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return apperrors.NewExecutionError(op, err)
		}
		if i > 0 && backoff > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return apperrors.NewExecutionError(op, ctx.Err())
			}
			backoff *= 2
		}

		lastErr = e.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			break
		}
	}
	return apperrors.NewExecutionError(op, lastErr)
}

func (e Executor) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	if e.Timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()
	return fn(attemptCtx)
}
