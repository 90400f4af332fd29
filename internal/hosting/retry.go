package hosting

import (
	"context"
	"errors"
	"time"

	"github.com/google/go-github/v68/github"
)

const (
	maxRetries      = 3
	fallbackBackoff = 2 * time.Second
)

// retry runs fn, sleeping and re-running on rate-limit class responses.
// The wait honors the server-suggested duration when one is present,
// else falls back to a fixed duration, bounded by maxRetries attempts.
// Credential and not-found errors are returned immediately.
func (c *Client) retry(ctx context.Context, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		wait, rateLimited := retryWait(err)
		if !rateLimited || attempt >= maxRetries {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.sleep(wait)
	}
}

// retryWait reports whether err is a rate-limit condition and how long
// to wait before retrying.
func retryWait(err error) (time.Duration, bool) {
	var abuse *github.AbuseRateLimitError
	if errors.As(err, &abuse) {
		if abuse.RetryAfter != nil && *abuse.RetryAfter > 0 {
			return *abuse.RetryAfter, true
		}
		return fallbackBackoff, true
	}

	var limited *github.RateLimitError
	if errors.As(err, &limited) {
		if wait := time.Until(limited.Rate.Reset.Time); wait > 0 {
			return wait, true
		}
		return fallbackBackoff, true
	}

	return 0, false
}
