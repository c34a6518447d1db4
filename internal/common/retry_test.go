package common_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/common"
)

func TestWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := common.WithRetry(context.Background(), func() error {
		calls++
		return nil
	}, common.RetryOptions{InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryEventuallySucceeds(t *testing.T) {
	calls := 0
	err := common.WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	failure := errors.New("database is locked")
	err := common.WithRetry(context.Background(), func() error {
		calls++
		return failure
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})

	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 3, calls)
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := common.WithRetry(context.Background(), func() error {
		calls++
		return &common.RetryableError{Err: errors.New("constraint violation"), Retryable: false}
	}, common.RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, 1, calls)
}

func TestWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := common.WithRetry(ctx, func() error {
		return errors.New("database is locked")
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: 50 * time.Millisecond})

	assert.ErrorIs(t, err, context.Canceled)
}
