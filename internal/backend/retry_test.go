package backend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/backend"
)

func TestRetryable(t *testing.T) {
	assert.False(t, backend.Retryable(nil))
	assert.False(t, backend.Retryable(backend.ErrNotFound))
	assert.False(t, backend.Retryable(backend.ErrNotConnected))
	assert.False(t, backend.Retryable(backend.ErrUnknownEndpoint))
	assert.False(t, backend.Retryable(context.Canceled))
	assert.False(t, backend.Retryable(context.DeadlineExceeded))

	// Wrapped sentinels are still definitive.
	assert.False(t, backend.Retryable(errors.Join(errors.New("sftp"), backend.ErrNotFound)))

	assert.True(t, backend.Retryable(errors.New("connection reset by peer")))
}

func TestWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := backend.WithRetry(context.Background(), 3, zerolog.Nop(), "list", func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := backend.WithRetry(context.Background(), 3, zerolog.Nop(), "list", func() error {
		calls++
		return backend.ErrNotFound
	})
	require.ErrorIs(t, err, backend.ErrNotFound)
	assert.Equal(t, 1, calls, "definitive errors must not be retried")
}

func TestWithRetryRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := backend.WithRetry(context.Background(), 3, zerolog.Nop(), "list", func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetryHonorsContextBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := backend.WithRetry(ctx, 5, zerolog.Nop(), "list", func() error {
		calls++
		cancel()
		return errors.New("transient")
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancellation must stop the backoff loop")
}

func TestWithRetryClampsAttempts(t *testing.T) {
	calls := 0
	err := backend.WithRetry(context.Background(), 0, zerolog.Nop(), "list", func() error {
		calls++
		return backend.ErrNotConnected
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
