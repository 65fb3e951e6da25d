package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotAcquired = errors.New("lock is held by another owner")

// Release gives a lock back. Releasing an expired lock is not an error.
type Release func(ctx context.Context) error

type Locker interface {
	// Acquire takes the lock for key for at most ttl, or returns ErrNotAcquired.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

type redisLocker struct {
	redis    *redis.Client
	prefix   string
	newToken func() string
}

func (r *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	lockKey := r.prefix + key
	token := r.newToken()
	ok, err := r.redis.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redisLocker.Acquire: %w", err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}
	return func(ctx context.Context) error {
		if e := r.redis.Eval(ctx, releaseScript, []string{lockKey}, token).Err(); e != nil {
			return fmt.Errorf("redisLocker.Release: %w", e)
		}
		return nil
	}, nil
}

func NewRedisLocker(client *redis.Client, prefix string) Locker {
	return &redisLocker{
		redis:    client,
		prefix:   prefix,
		newToken: uuid.NewString,
	}
}

type memoryLocker struct {
	mu    sync.Mutex
	held  map[string]memoryLease
	now   func() time.Time
	count uint64
}

type memoryLease struct {
	id        uint64
	expiresAt time.Time
}

func (m *memoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if lease, ok := m.held[key]; ok && now.Before(lease.expiresAt) {
		return nil, ErrNotAcquired
	}
	m.count++
	id := m.count
	m.held[key] = memoryLease{id: id, expiresAt: now.Add(ttl)}
	return func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if lease, ok := m.held[key]; ok && lease.id == id {
			delete(m.held, key)
		}
		return nil
	}, nil
}

// NewMemoryLocker returns a process-local Locker for single-instance deployments and tests.
func NewMemoryLocker() Locker {
	return &memoryLocker{
		held: make(map[string]memoryLease),
		now:  time.Now,
	}
}
