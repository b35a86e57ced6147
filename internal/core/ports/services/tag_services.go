package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// TagSvcFacade covers tag management.
type TagSvcFacade interface {
	// Create returns the existing tag when the name is already taken.
	Create(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tag, error)
	GetByID(ctx context.Context, tagID int64) (*domain.Tag, error)
	// Update renames a tag. Moderator or admin only.
	Update(ctx context.Context, actor *domain.User, tagID int64, name string) (*domain.Tag, error)
	// Delete removes a tag. Moderator or admin only.
	Delete(ctx context.Context, actor *domain.User, tagID int64) error
}
