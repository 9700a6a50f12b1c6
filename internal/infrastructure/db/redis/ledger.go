package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenLedger records spent refresh-token jtis so a rotated token cannot be
// replayed. Entries expire with the tokens they track, so the ledger
// self-prunes. Key format: refresh_used:<jti>
type TokenLedger struct {
	client *redis.Client
}

func NewTokenLedger(client *redis.Client) *TokenLedger {
	return &TokenLedger{client: client}
}

// Consume marks jti spent and reports whether this caller was first. SetNX
// makes the rotation single-winner when multiple tabs race with the same
// stored refresh token.
func (l *TokenLedger) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(jti), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ledger consume: %w", err)
	}
	return ok, nil
}

func (l *TokenLedger) key(jti string) string {
	return "refresh_used:" + jti
}
