package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-runs transient provider failures with exponential backoff
// and jitter. Bad-output faults get exactly one retry; context
// cancellation is always terminal.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var lastErr error
	var badOutputRetried bool

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.wait(attempt-1, lastErr)):
			}
		}

		out, err := r.inner.Complete(ctx, p)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !retryable(err, &badOutputRetried) {
			return nil, err
		}
	}

	return nil, lastErr
}

func retryable(err error, badOutputRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if faultOf(err) == FaultBadOutput {
		if *badOutputRetried {
			return false
		}
		*badOutputRetried = true
		return true
	}
	// Rate limits, outages, and untyped network errors are transient.
	return true
}

// wait computes the backoff before re-running a failed attempt,
// honoring a provider-supplied Retry-After when one exists.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var ce *CallError
	if errors.As(err, &ce) && ce.RetryAfter > 0 {
		return ce.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))
	d *= 1 + 0.2*(2*rand.Float64()-1) // ±20% jitter
	return time.Duration(math.Max(d, 0))
}
