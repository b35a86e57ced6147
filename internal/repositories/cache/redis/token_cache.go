package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
)

const blacklistKeyPrefix = "blacklist:"

// TokenCache mirrors the relational token blacklist for fast lookups on
// the hot authentication path. Entries expire with the token itself;
// after that the signature check rejects the token anyway.
type TokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a new instance of TokenCache.
func NewTokenCache(client *redis.Client) portsrepo.TokenCache {
	return &TokenCache{client: client}
}

// Ensure TokenCache implements portsrepo.TokenCache
var _ portsrepo.TokenCache = (*TokenCache)(nil)

func (c *TokenCache) MarkBlacklisted(ctx context.Context, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark token blacklisted: %w", err)
	}
	return nil
}

func (c *TokenCache) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}
