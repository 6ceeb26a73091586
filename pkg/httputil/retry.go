package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks an error as transient. The transport bridge wraps
// connection failures and 5xx responses with this type; [Retry] attempts
// only errors carrying it. Resolver-stage errors (bad pins, missing wheels,
// corrupt archives) are never wrapped and therefore never retried.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times, doubling delay between attempts.
//
// Only errors wrapped in [RetryableError] trigger another attempt; any
// other error is returned immediately. Waiting respects ctx: cancellation
// during the backoff returns ctx.Err(). After the final attempt the last
// error is returned as-is, still carrying its RetryableError wrapper for
// callers that unwrap it.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
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

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
