package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LimiterStore is a fixed-window rate counter shared between server
// instances. Key format: ratelimit:<key>
type LimiterStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewLimiterStore(client *redis.Client, limit int, window time.Duration) *LimiterStore {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LimiterStore{client: client, limit: int64(limit), window: window}
}

// Allow increments the counter for key and reports whether it is still
// within the window budget. The expiry is set when the window opens.
func (s *LimiterStore) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + key

	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("limiter incr: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
			return false, fmt.Errorf("limiter expire: %w", err)
		}
	}
	return n <= s.limit, nil
}
