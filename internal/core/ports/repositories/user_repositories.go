package repositories

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByEmail retrieves a user by email, the primary identity key.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns it with its assigned ID.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateRefreshToken replaces the stored refresh token for a user.
	// An empty token revokes the current one.
	UpdateRefreshToken(ctx context.Context, email string, token string) error

	// ConfirmEmail marks a user's email address as confirmed.
	ConfirmEmail(ctx context.Context, email string) error

	// UpdateAvatar sets a new avatar URL for a user.
	UpdateAvatar(ctx context.Context, email string, avatarURL string) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, email string, passwordHash string) error

	// UpdateUsername changes a user's username.
	UpdateUsername(ctx context.Context, email string, username string) error

	// UpdateResetToken stores the one-time password reset token.
	// An empty token clears it.
	UpdateResetToken(ctx context.Context, email string, token string) error

	// SetBanned flips the ban flag for a user.
	SetBanned(ctx context.Context, email string, banned bool) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
