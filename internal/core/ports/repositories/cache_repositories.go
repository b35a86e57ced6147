package repositories

import (
	"context"
	"time"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// UserCache is the session cache port: an ephemeral store of serialized
// user snapshots keyed by email. Implementations must treat their own
// unavailability as a miss, never as a hard failure.
type UserCache interface {
	// GetUser returns the cached user, or (nil, nil) on a miss.
	GetUser(ctx context.Context, email string) (*domain.User, error)

	// SetUser stores a snapshot of the user with the given TTL.
	SetUser(ctx context.Context, user domain.User, ttl time.Duration) error

	// DeleteUser drops the cached snapshot for an email, if any.
	DeleteUser(ctx context.Context, email string) error
}

// TokenCache is the fast-path mirror of the token blacklist. The
// relational store remains the source of truth.
type TokenCache interface {
	// MarkBlacklisted records a revoked token for ttl (the token's
	// remaining lifetime; after expiry the signature check rejects it).
	MarkBlacklisted(ctx context.Context, token string, ttl time.Duration) error

	// IsBlacklisted reports whether the token is known revoked.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
