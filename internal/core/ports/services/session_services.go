package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// SessionSvcFacade serves user lookups through the cache and tracks
// revoked tokens.
type SessionSvcFacade interface {
	// ResolveUser returns the user for the email, reading through the
	// cache and falling back to the database on a miss.
	ResolveUser(ctx context.Context, email string) (*domain.User, error)
	// RefreshUser re-reads the user from the database and rewrites the
	// cached snapshot.
	RefreshUser(ctx context.Context, email string) (*domain.User, error)
	// EvictUser drops the cached snapshot for the email.
	EvictUser(ctx context.Context, email string)
	// Blacklist permanently revokes the token for the given account.
	Blacklist(ctx context.Context, token, email string) error
	// IsBlacklisted reports whether the token has been revoked.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
