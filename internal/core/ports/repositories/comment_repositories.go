package repositories

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a comment by its ID.
	FindCommentByID(ctx context.Context, commentID int64) (*domain.Comment, error)

	// FindCommentsByImage retrieves all comments for an image, oldest first.
	FindCommentsByImage(ctx context.Context, imageID int64) ([]domain.Comment, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment and returns it with its assigned ID.
	SaveComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)

	// UpdateComment replaces a comment's content.
	UpdateComment(ctx context.Context, commentID int64, content string) error

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID int64) error
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
