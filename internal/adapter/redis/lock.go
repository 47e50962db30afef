// Package redisadapter provides a cross-process dispatch lock on Redis.
package redisadapter

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"outreach/internal/core/port"
)

var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

var extendScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("pexpire", KEYS[1], ARGV[2])
	else
		return 0
	end
`)

// Locker hands out SET NX locks with a random ownership token. A held
// lock is extended in the background until it is released, so runs longer
// than the TTL stay exclusive while a crashed holder frees the key after
// at most one TTL.
type Locker struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ port.Locker = (*Locker)(nil)

func NewLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Locker {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Locker{client: client, ttl: ttl, logger: logger}
}

func (l *Locker) TryLock(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	lockKey := "lock:" + key
	token, err := newToken()
	if err != nil {
		return nil, false, err
	}
	ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", lockKey, err)
	}
	if !ok {
		return nil, false, nil
	}

	keepCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go l.keepAlive(keepCtx, lockKey, token, done)

	var once sync.Once
	var releaseErr error
	unlock := func(ctx context.Context) error {
		once.Do(func() {
			stop()
			<-done
			if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
				releaseErr = fmt.Errorf("release lock %s: %w", lockKey, err)
			}
		})
		return releaseErr
	}
	return unlock, true, nil
}

func (l *Locker) keepAlive(ctx context.Context, key, token string, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.ttl / 3)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := extendScript.Run(ctx, l.client, []string{key}, token, l.ttl.Milliseconds()).Int()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Warn("extend lock", slog.String("key", key), slog.Any("error", err))
				continue
			}
			if n == 0 {
				l.logger.Warn("lock lost", slog.String("key", key))
				return
			}
		}
	}
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
