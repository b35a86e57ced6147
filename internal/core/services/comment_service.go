package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// commentService implements CommentSvcFacade.
type commentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
	imageRepo   portsrepo.ImageRepositoryFacade
}

// NewCommentService creates a new instance of commentService.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, imageRepo portsrepo.ImageRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentService{commentRepo: commentRepo, imageRepo: imageRepo}
}

func (s *commentService) Create(ctx context.Context, user *domain.User, req dto.CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.imageRepo.FindImageByID(ctx, req.ImageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Image not found")
		}
		return nil, fmt.Errorf("failed to look up image: %w", err)
	}

	comment := domain.Comment{
		Content: req.Content,
		UserID:  user.ID,
		ImageID: req.ImageID,
	}
	saved, err := s.commentRepo.SaveComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return saved, nil
}

func (s *commentService) ListByImage(ctx context.Context, imageID int64) ([]domain.Comment, error) {
	if _, err := s.imageRepo.FindImageByID(ctx, imageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Image not found")
		}
		return nil, fmt.Errorf("failed to look up image: %w", err)
	}
	return s.commentRepo.FindCommentsByImage(ctx, imageID)
}

// Update edits a comment's content. Only the author may edit.
func (s *commentService) Update(ctx context.Context, actor *domain.User, commentID int64, content string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Comment not found")
		}
		return nil, fmt.Errorf("failed to look up comment: %w", err)
	}
	if comment.UserID != actor.ID {
		return nil, apperrors.NewForbiddenError("Operation forbidden")
	}

	if err := s.commentRepo.UpdateComment(ctx, commentID, content); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return s.commentRepo.FindCommentByID(ctx, commentID)
}

// Delete removes a comment. Restricted to moderators and admins; regular
// users cannot delete comments, not even their own.
func (s *commentService) Delete(ctx context.Context, actor *domain.User, commentID int64) error {
	if !actor.Role.CanModerate() {
		return apperrors.NewForbiddenError("Operation forbidden")
	}
	if _, err := s.commentRepo.FindCommentByID(ctx, commentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Comment not found")
		}
		return fmt.Errorf("failed to look up comment: %w", err)
	}
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
