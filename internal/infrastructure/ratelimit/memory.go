// Package ratelimit provides a process-local limiter store for single
// instance deployments and tests. Multi-instance deployments should use the
// redis-backed store so limits are shared.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryStore keeps one token bucket per client key and sweeps idle entries
// so the map cannot grow without bound.
type MemoryStore struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	done    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryStore allows limit requests per window per key.
func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	s := &MemoryStore{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		done:    make(chan struct{}),
	}
	go s.sweep(window)
	return s
}

func (s *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow(), nil
}

func (s *MemoryStore) sweep(window time.Duration) {
	interval := 5 * time.Minute
	idle := 3 * window
	if idle < interval {
		idle = interval
	}

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.mu.Lock()
			cutoff := time.Now().Add(-idle)
			for key, c := range s.clients {
				if c.lastSeen.Before(cutoff) {
					delete(s.clients, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Close stops the sweeper.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}
