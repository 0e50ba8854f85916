package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks failures talking to a registry or remote service.
var ErrNetwork = errors.New("network error")

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryPolicy bounds a retry loop: Attempts tries with Delay doubling
// between them.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry is three attempts starting at one second.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: time.Second}

// RetryWithBackoff runs fn under DefaultRetry.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultRetry.Do(ctx, fn)
}

// Do calls fn until it succeeds, returns an error not wrapped with
// Retryable, or the attempts run out. It returns ctx.Err() if the context
// ends while waiting.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
