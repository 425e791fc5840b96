package backend

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Retry defaults for transient backend failures.
const (
	DefaultRetries   = 3
	defaultBaseDelay = 500 * time.Millisecond
)

// Retryable reports whether an error is worth retrying. Missing paths and
// unreachable endpoints are definitive answers, not transport glitches.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrNotConnected),
		errors.Is(err, ErrUnknownEndpoint),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

// WithRetry runs fn up to attempts times with doubling backoff between
// tries. Non-retryable errors propagate immediately.
func WithRetry(ctx context.Context, attempts int, logger zerolog.Logger, op string, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	delay := defaultBaseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !Retryable(err) {
			return err
		}

		if attempt == attempts {
			break
		}

		logger.Warn().
			Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Dur("backoff", delay).
			Msg("transient backend error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return err
}
