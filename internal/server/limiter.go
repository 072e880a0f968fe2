package server

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitKeyPrefix namespaces limiter keys in redis.
const rateLimitKeyPrefix = "rate_limit:"

// Limiter decides whether a client may run another scan within the
// current window.
//
// Design decision: We use an interface so the HTTP layer does not care
// whether counts live in redis (shared between instances) or in process
// memory (single instance, tests). Allow returns an error only for
// backend failures; the middleware treats those as "allowed" so a broken
// limiter never blocks the service.
type Limiter interface {
	// Allow reports whether the client identified by clientID may
	// proceed, counting this request against its current window.
	Allow(ctx context.Context, clientID string) (bool, error)
}

// RedisLimiter counts scans per client in redis using INCR with a
// window-length TTL set on the first request. Counts are shared between
// all instances pointing at the same redis.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a limiter backed by the given redis client.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow checks and increments the client's scan count.
// The first request in a window creates the key with the window TTL,
// so the window rolls from the client's first scan.
func (l *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := rateLimitKeyPrefix + clientID

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}

// MemoryLimiter counts scans per client in process memory.
// It is used when no redis address is configured and in tests.
// Counts are lost on restart and not shared between instances.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*memoryEntry

	// now is swappable for tests.
	now func() time.Time
}

type memoryEntry struct {
	count       int
	windowStart time.Time
}

// NewMemoryLimiter creates an in-memory limiter.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Allow checks and increments the client's scan count.
// Expired entries are reset in place; other stale entries are dropped
// opportunistically to bound memory growth.
func (l *MemoryLimiter) Allow(_ context.Context, clientID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// Drop entries whose window has long passed
	for id, e := range l.entries {
		if id != clientID && now.Sub(e.windowStart) >= 2*l.window {
			delete(l.entries, id)
		}
	}

	e, ok := l.entries[clientID]
	if !ok || now.Sub(e.windowStart) >= l.window {
		l.entries[clientID] = &memoryEntry{count: 1, windowStart: now}
		return l.limit >= 1, nil
	}

	e.count++
	return e.count <= l.limit, nil
}
