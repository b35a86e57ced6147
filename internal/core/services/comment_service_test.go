package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/core/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

func TestCommentService_Create(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewCommentService(commentRepo, imageRepo)

	t.Run("unknown image", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return nil, apperrors.ErrNotFound
		}
		_, err := svc.Create(context.Background(), &domain.User{ID: 1}, dto.CreateCommentRequest{ImageID: 10, Content: "nice"})
		assertAppError(t, err, http.StatusNotFound, "Image not found")
	})

	t.Run("persists author and image", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return &domain.Image{ID: imageID, UserID: 2}, nil
		}
		commentRepo.SaveCommentFn = func(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
			comment.ID = 7
			return &comment, nil
		}

		comment, err := svc.Create(context.Background(), &domain.User{ID: 1}, dto.CreateCommentRequest{ImageID: 10, Content: "nice"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), comment.ID)
		assert.Equal(t, int64(1), comment.UserID)
		assert.Equal(t, int64(10), comment.ImageID)
		assert.Equal(t, "nice", comment.Content)
	})
}

func TestCommentService_Update_AuthorOnly(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewCommentService(commentRepo, imageRepo)

	commentRepo.FindCommentByIDFn = func(ctx context.Context, commentID int64) (*domain.Comment, error) {
		return &domain.Comment{ID: commentID, UserID: 1, Content: "old"}, nil
	}

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), &domain.User{ID: 2, Role: domain.RoleUser}, 7, "new")
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})

	t.Run("moderator is rejected too", func(t *testing.T) {
		_, err := svc.Update(context.Background(), &domain.User{ID: 9, Role: domain.RoleModerator}, 7, "new")
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})

	t.Run("author may edit", func(t *testing.T) {
		var updatedContent string
		commentRepo.UpdateCommentFn = func(ctx context.Context, commentID int64, content string) error {
			updatedContent = content
			return nil
		}
		_, err := svc.Update(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 7, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", updatedContent)
	})
}

func TestCommentService_Delete_ModeratorOnly(t *testing.T) {
	commentRepo := &MockCommentRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewCommentService(commentRepo, imageRepo)

	commentRepo.FindCommentByIDFn = func(ctx context.Context, commentID int64) (*domain.Comment, error) {
		return &domain.Comment{ID: commentID, UserID: 1}, nil
	}

	// Regular users cannot delete comments, not even their own
	err := svc.Delete(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 7)
	assertAppError(t, err, http.StatusForbidden, "Operation forbidden")

	var deleted bool
	commentRepo.DeleteCommentFn = func(ctx context.Context, commentID int64) error {
		deleted = true
		return nil
	}
	require.NoError(t, svc.Delete(context.Background(), &domain.User{ID: 9, Role: domain.RoleModerator}, 7))
	assert.True(t, deleted)

	commentRepo.FindCommentByIDFn = func(ctx context.Context, commentID int64) (*domain.Comment, error) {
		return nil, apperrors.ErrNotFound
	}
	err = svc.Delete(context.Background(), &domain.User{ID: 9, Role: domain.RoleAdmin}, 404)
	assertAppError(t, err, http.StatusNotFound, "Comment not found")
}
