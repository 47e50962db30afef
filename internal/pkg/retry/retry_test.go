package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func recordSleeps(waits *[]time.Duration) func(context.Context, time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return ctx.Err()
	}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	var waits []time.Duration
	calls := 0
	err := Do(context.Background(), Policy{
		MaxAttempts: 4,
		Delay:       Linear(time.Second),
		Sleep:       recordSleeps(&waits),
	}, func(ctx context.Context, attempt int) error {
		calls++
		if attempt < 3 {
			return errBoom
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, waits)
}

func TestDo_StopsOnNonRetryable(t *testing.T) {
	permanent := errors.New("mailbox does not exist")
	calls := 0
	err := Do(context.Background(), Policy{
		MaxAttempts: 4,
		Retryable:   func(err error) bool { return !errors.Is(err, permanent) },
		Sleep:       recordSleeps(new([]time.Duration)),
	}, func(ctx context.Context, attempt int) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ReturnsLastErrorWhenExhausted(t *testing.T) {
	var retries []int
	calls := 0
	err := Do(context.Background(), Policy{
		MaxAttempts: 3,
		OnRetry:     func(retry int, err error, wait time.Duration) { retries = append(retries, retry) },
		Sleep:       recordSleeps(new([]time.Duration)),
	}, func(ctx context.Context, attempt int) error {
		calls++
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retries)
}

func TestDo_ZeroPolicyRunsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Policy{}, func(ctx context.Context, attempt int) error {
		calls++
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDo_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Policy{
		MaxAttempts: 5,
		Delay:       Constant(time.Hour),
	}, func(ctx context.Context, attempt int) error {
		calls++
		cancel()
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDo_CancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Policy{
		MaxAttempts: 5,
		Sleep: func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}, func(ctx context.Context, attempt int) error {
		calls++
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesInnerDeadline(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Policy{MaxAttempts: 2}, func(ctx context.Context, attempt int) error {
		calls++
		if attempt == 1 {
			return context.DeadlineExceeded
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), 0))
	require.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
