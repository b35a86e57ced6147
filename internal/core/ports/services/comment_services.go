package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// CommentSvcFacade covers commenting on images.
type CommentSvcFacade interface {
	Create(ctx context.Context, user *domain.User, req dto.CreateCommentRequest) (*domain.Comment, error)
	ListByImage(ctx context.Context, imageID int64) ([]domain.Comment, error)
	// Update edits a comment. Author only.
	Update(ctx context.Context, actor *domain.User, commentID int64, content string) (*domain.Comment, error)
	// Delete removes a comment. Moderator or admin only.
	Delete(ctx context.Context, actor *domain.User, commentID int64) error
}
