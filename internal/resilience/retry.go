// Package resilience provides retry with exponential backoff for calls
// to outer enrichment providers. Discovery and contact search stay
// retry-free; the broker already smooths those paths.
package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net"
	"time"

	"go.uber.org/zap"
)

// Policy controls retry behavior.
type Policy struct {
	// Attempts is the total number of tries including the first.
	// 1 means no retries. Default: 3.
	Attempts int

	// BaseDelay is the sleep before the first retry. Default: 500ms.
	BaseDelay time.Duration

	// MaxDelay caps the computed backoff. Default: 15s.
	MaxDelay time.Duration

	// Multiplier scales the delay after each attempt. Default: 2.0.
	Multiplier float64

	// Jitter is random spread as a fraction of the delay. Default: 0.25.
	Jitter float64

	// ShouldRetry overrides the transient-error check. Nil uses IsTransient.
	ShouldRetry func(err error) bool
}

// DefaultPolicy suits paid enrichment APIs: few attempts, short waits.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:   3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   15 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.25,
	}
}

func (p Policy) withDefaults() Policy {
	if p.Attempts <= 0 {
		p.Attempts = 3
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 500 * time.Millisecond
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 15 * time.Second
	}
	if p.Multiplier <= 0 {
		p.Multiplier = 2.0
	}
	if p.Jitter < 0 {
		p.Jitter = 0
	}
	return p
}

// Do runs fn until it succeeds, the error is permanent, the attempts
// run out, or ctx is cancelled. The last error is returned as-is.
func Do[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	p = p.withDefaults()

	shouldRetry := p.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = IsTransient
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < p.Attempts; attempt++ {
		val, err := fn(ctx)
		if err == nil {
			return val, nil
		}
		lastErr = err

		if ctx.Err() != nil || !shouldRetry(err) {
			return zero, lastErr
		}
		if attempt == p.Attempts-1 {
			break
		}

		zap.L().Warn("retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)

		timer := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, lastErr
		case <-timer.C:
		}
	}

	return zero, lastErr
}

func (p Policy) delay(attempt int) time.Duration {
	d := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt))
	if d > float64(p.MaxDelay) {
		d = float64(p.MaxDelay)
	}
	if p.Jitter > 0 {
		d += (rand.Float64()*2 - 1) * d * p.Jitter
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// Transient marks an error as safe to retry, carrying the HTTP status
// that caused it when one applies.
type Transient struct {
	Err        error
	StatusCode int
}

func (e *Transient) Error() string { return e.Err.Error() }

func (e *Transient) Unwrap() error { return e.Err }

// MarkTransient wraps err as retryable.
func MarkTransient(err error, statusCode int) *Transient {
	return &Transient{Err: err, StatusCode: statusCode}
}

// IsTransient reports whether err is retryable: an explicit Transient
// in the chain, or a network timeout.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var te *Transient
	if errors.As(err, &te) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// RetryableStatus reports whether an HTTP status is worth retrying.
func RetryableStatus(code int) bool {
	switch code {
	case 408, 429, 500, 502, 503, 504:
		return true
	}
	return false
}
