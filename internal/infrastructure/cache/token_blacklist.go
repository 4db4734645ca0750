package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist records revoked ID tokens until they would have expired
// anyway, so logout actually invalidates the session server-side.
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{
		rdb: rdb,
	}
}

func blacklistKey(token string) string {
	return "revoked:" + token
}

func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to record.
		return nil
	}
	return b.rdb.Set(ctx, blacklistKey(token), 1, ttl).Err()
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) bool {
	n, err := b.rdb.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		// Fail open: a cache outage must not lock every user out.
		return false
	}
	return n > 0
}
