package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/afrovibz/product-images-go/internal/port"
)

type windowCounter struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is an in-process fixed-window counter, used when Redis is not
// configured. Suitable for single-instance deployments only; expired entries
// are dropped on access so the map does not grow with dead clients.
type MemoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*windowCounter
	limit   int
	window  time.Duration
	now     func() time.Time
}

// compile-time check: *MemoryLimiter must satisfy port.RateLimiter
var _ port.RateLimiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		clients: make(map[string]*windowCounter),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// opportunistic eviction keeps the map bounded
	for id, c := range l.clients {
		if now.After(c.resetAt) {
			delete(l.clients, id)
		}
	}

	c, ok := l.clients[clientID]
	if !ok || now.After(c.resetAt) {
		l.clients[clientID] = &windowCounter{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}

	c.count++
	return c.count <= l.limit, nil
}
