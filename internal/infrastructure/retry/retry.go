// Package retry runs provider calls again after transient failures, backing off
// exponentially between attempts.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy controls how many attempts are made and how long to wait between them.
type Policy struct {
	// MaxAttempts counts the first call. Values below 1 mean a single call.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// JitterFactor adds up to this fraction of the delay at random (0.0 to 1.0).
	JitterFactor float64

	// Retryable reports whether err is worth another attempt.
	// A nil Retryable treats every error as transient.
	Retryable func(error) bool

	// OnRetry is called before each wait with the failed attempt number.
	OnRetry func(attempt int, wait time.Duration, err error)
}

// ProviderPolicy is tuned for calls to the offer search API.
var ProviderPolicy = Policy{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithMaxAttempts returns a copy of p with n attempts.
func (p Policy) WithMaxAttempts(n int) Policy {
	p.MaxAttempts = n
	return p
}

// WithRetryable returns a copy of p using fn to classify errors.
func (p Policy) WithRetryable(fn func(error) bool) Policy {
	p.Retryable = fn
	return p
}

// WithOnRetry returns a copy of p calling fn before each wait.
func (p Policy) WithOnRetry(fn func(attempt int, wait time.Duration, err error)) Policy {
	p.OnRetry = fn
	return p
}

// WithDelays returns a copy of p with the given initial and maximum waits.
func (p Policy) WithDelays(initial, max time.Duration) Policy {
	p.InitialDelay = initial
	p.MaxDelay = max
	return p
}

// Do calls fn until it succeeds, returns a non-retryable error, the attempts run
// out, or ctx is done. The last error from fn is returned when attempts run out.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		result T
		err    error
		delay  = p.InitialDelay
	)

	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result, err = fn(ctx)
		if err == nil {
			return result, nil
		}

		if p.Retryable != nil && !p.Retryable(err) {
			return result, err
		}
		if attempt == attempts {
			break
		}

		wait := backoff(delay, p.MaxDelay, p.JitterFactor)
		if p.OnRetry != nil {
			p.OnRetry(attempt, wait, err)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		if p.Multiplier > 0 {
			delay = time.Duration(float64(delay) * p.Multiplier)
		}
	}

	return result, err
}

func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	wait := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if maxDelay > 0 && wait > maxDelay {
		wait = maxDelay
	}
	return wait
}
