package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T, ttl time.Duration) (*Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLocker(client, ttl, nil), mr
}

func TestTryLockIsExclusive(t *testing.T) {
	l, mr := newTestLocker(t, time.Minute)
	ctx := context.Background()

	unlock, ok, err := l.TryLock(ctx, "dispatch:c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("lock:dispatch:c1"))
	assert.Equal(t, time.Minute, mr.TTL("lock:dispatch:c1"))

	_, ok, err = l.TryLock(ctx, "dispatch:c1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = l.TryLock(ctx, "dispatch:c2")
	require.NoError(t, err)
	assert.True(t, ok, "other campaigns are independent")

	require.NoError(t, unlock(ctx))
	require.NoError(t, unlock(ctx), "unlock is idempotent")
	assert.False(t, mr.Exists("lock:dispatch:c1"))

	_, ok, err = l.TryLock(ctx, "dispatch:c1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnlockKeepsForeignLock(t *testing.T) {
	l, mr := newTestLocker(t, time.Minute)
	ctx := context.Background()

	unlock, ok, err := l.TryLock(ctx, "dispatch:c1")
	require.NoError(t, err)
	require.True(t, ok)

	// Simulate expiry followed by another holder.
	require.NoError(t, mr.Set("lock:dispatch:c1", "someone-else"))

	require.NoError(t, unlock(ctx))
	got, err := mr.Get("lock:dispatch:c1")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestHeldLockIsExtended(t *testing.T) {
	l, mr := newTestLocker(t, 90*time.Millisecond)
	ctx := context.Background()

	unlock, ok, err := l.TryLock(ctx, "dispatch:c1")
	require.NoError(t, err)
	require.True(t, ok)
	defer unlock(ctx)

	mr.SetTTL("lock:dispatch:c1", time.Millisecond)
	require.Eventually(t, func() bool {
		return mr.TTL("lock:dispatch:c1") > time.Millisecond
	}, time.Second, 5*time.Millisecond)
}

func TestTryLockReportsRedisErrors(t *testing.T) {
	l, mr := newTestLocker(t, time.Minute)
	mr.Close()

	_, ok, err := l.TryLock(context.Background(), "dispatch:c1")
	assert.Error(t, err)
	assert.False(t, ok)
}
