package backoff

import (
	"context"
	"time"
)

// Policy describes an exponential backoff schedule. The zero value is not
// usable; construct with New or fill all fields.
type Policy struct {
	Base        time.Duration // delay before the first retry
	Cap         time.Duration // upper bound on any single delay
	MaxAttempts int           // total attempts including the first; 0 = unbounded
}

// New returns a policy with the given base and cap and a bounded number of
// attempts.
func New(base, cap time.Duration, maxAttempts int) Policy {
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	if cap <= 0 {
		cap = 5 * time.Second
	}
	return Policy{Base: base, Cap: cap, MaxAttempts: maxAttempts}
}

// Delay returns the delay to wait after the given zero-based failed
// attempt: Base<<attempt, capped.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := p.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= p.Cap {
			return p.Cap
		}
	}
	if d > p.Cap {
		return p.Cap
	}
	return d
}

// Exhausted reports whether attempt (zero-based, counting failures so far)
// has used up the attempt budget.
func (p Policy) Exhausted(attempt int) bool {
	return p.MaxAttempts > 0 && attempt >= p.MaxAttempts
}

// Sleep waits out the delay for the given attempt, returning early with
// the context's error if it is cancelled.
func (p Policy) Sleep(ctx context.Context, attempt int) error {
	timer := time.NewTimer(p.Delay(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry runs fn until it succeeds, returns a non-retryable error, or the
// attempt budget is exhausted. fn reports via retryable whether its error
// is worth another attempt.
func (p Policy) Retry(ctx context.Context, fn func(attempt int) error, retryable func(error) bool) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if p.Exhausted(attempt + 1) {
			return err
		}
		if sleepErr := p.Sleep(ctx, attempt); sleepErr != nil {
			return err
		}
	}
}
