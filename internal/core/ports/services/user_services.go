package services

import (
	"context"
	"mime/multipart"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// UserSvcFacade covers account self-service and moderation of accounts.
type UserSvcFacade interface {
	// Info assembles the authenticated user's own view.
	Info(ctx context.Context, user *domain.User) (*dto.UserInfo, error)
	// Profile returns another user's public profile by username.
	Profile(ctx context.Context, username string) (*dto.UserProfile, error)
	ChangeUsername(ctx context.Context, user *domain.User, username string) error
	// UpdateAvatar stores the uploaded file and records its URL.
	UpdateAvatar(ctx context.Context, user *domain.User, file *multipart.FileHeader) (string, error)
	// SetBan flips the banned flag on the target account. Moderators and
	// admins only, and never against another moderator or admin.
	SetBan(ctx context.Context, actor *domain.User, username string, banned bool) error
}
