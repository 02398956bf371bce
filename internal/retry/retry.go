// Package retry provides the single bounded-retry policy used for flaky
// browser interactions: a fixed number of attempts with the delay doubling
// after each failure, surfacing the last error once attempts run out.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Do runs op until it succeeds, making at most maxAttempts attempts. The
// wait between attempts starts at baseDelay and doubles each time. Once
// attempts are exhausted the last error is returned. Cancelling ctx stops
// the loop between attempts.
func Do(ctx context.Context, maxAttempts int, baseDelay time.Duration, op func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = baseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0 // keep the doubling exact
	policy.MaxInterval = time.Minute
	policy.MaxElapsedTime = 0 // bounded by attempts, not wall clock

	bounded := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxAttempts-1)), ctx)
	return backoff.Retry(op, bounded)
}

// Permanent marks err as non-retryable: Do returns it without spending the
// remaining attempts. Use it for failures more attempts cannot fix, such as
// an unknown catalog item.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
