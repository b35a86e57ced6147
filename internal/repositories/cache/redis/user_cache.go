package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
)

const (
	userKeyPrefix = "user:"

	// userSnapshotVersion is bumped whenever the snapshot layout
	// changes; older entries are treated as misses instead of being
	// decoded into the wrong shape.
	userSnapshotVersion = 1
)

// userSnapshot is the cached wire form of a user. Credentials and token
// values are deliberately excluded: every flow that needs them reads the
// database.
type userSnapshot struct {
	V         int       `json:"v"`
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCache stores serialized user snapshots keyed by email.
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a new instance of UserCache.
func NewUserCache(client *redis.Client) portsrepo.UserCache {
	return &UserCache{client: client}
}

// Ensure UserCache implements portsrepo.UserCache
var _ portsrepo.UserCache = (*UserCache)(nil)

func (c *UserCache) GetUser(ctx context.Context, email string) (*domain.User, error) {
	payload, err := c.client.Get(ctx, userKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user snapshot: %w", err)
	}

	var snap userSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil || snap.V != userSnapshotVersion {
		// Corrupt or outdated entry. Drop it and report a miss.
		c.client.Del(ctx, userKeyPrefix+email)
		return nil, nil
	}

	return &domain.User{
		ID:        snap.ID,
		Username:  snap.Username,
		Email:     snap.Email,
		Avatar:    snap.Avatar,
		Role:      domain.Role(snap.Role),
		Confirmed: snap.Confirmed,
		Banned:    snap.Banned,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}, nil
}

func (c *UserCache) SetUser(ctx context.Context, user domain.User, ttl time.Duration) error {
	snap := userSnapshot{
		V:         userSnapshotVersion,
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		Confirmed: user.Confirmed,
		Banned:    user.Banned,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	if err := c.client.Set(ctx, userKeyPrefix+user.Email, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write user snapshot: %w", err)
	}
	return nil
}

func (c *UserCache) DeleteUser(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, userKeyPrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to delete user snapshot: %w", err)
	}
	return nil
}
