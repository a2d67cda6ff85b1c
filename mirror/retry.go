package mirror

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/docmirror"
)

// RetryConfig controls retry behavior for network operations.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries uint64

	// InitialInterval is the delay before the first retry.
	InitialInterval time.Duration

	// MaxInterval caps the exponential backoff delay.
	MaxInterval time.Duration
}

// DefaultRetryConfig returns the retry settings used when the caller
// provides none: 3 retries starting at 1s, capped at 30s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
	}
}

// retryValue runs op with exponential backoff until it succeeds, the retry
// budget runs out, or the context is canceled. Errors that
// docmirror.Retryable classifies as permanent stop the retries immediately.
func retryValue[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.RandomizationFactor = 0.5

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx)

	return backoff.RetryWithData(func() (T, error) {
		v, err := op()
		if err != nil && !docmirror.Retryable(err) {
			var zero T
			return zero, backoff.Permanent(err)
		}
		return v, err
	}, policy)
}
