package api

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// Policy is the single retry policy for the client: capped exponential
// backoff with a fixed attempt ceiling. The original product retried only
// inside the speech-generation flow; here the policy lives at the client
// boundary and any call site can apply it.
type Policy struct {
	// MaxAttempts counts the first try plus retries. Values below 2
	// disable retrying.
	MaxAttempts int

	// BaseDelay is the first backoff interval. Zero means 500ms.
	BaseDelay time.Duration

	// MaxDelay caps the backoff growth. Zero means 8s.
	MaxDelay time.Duration
}

func (p Policy) withDefaults() Policy {
	if p.BaseDelay == 0 {
		p.BaseDelay = 500 * time.Millisecond
	}
	if p.MaxDelay == 0 {
		p.MaxDelay = 8 * time.Second
	}
	return p
}

// retryable reports whether err is worth another attempt: transport
// failures and throttling/server-side statuses are; everything the caller
// did wrong (4xx, validation, decode) is not.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 429 || apiErr.Status >= 500
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}

	// anything else is a transport-level failure
	return true
}

// withRetry runs fn under the client's policy. With retries disabled it is
// a plain call.
func (c *Client) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	p := c.retry.withDefaults()
	if p.MaxAttempts < 2 {
		return fn(ctx)
	}

	b := retry.NewExponential(p.BaseDelay)
	b = retry.WithCappedDuration(p.MaxDelay, b)
	b = retry.WithMaxRetries(uint64(p.MaxAttempts-1), b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
