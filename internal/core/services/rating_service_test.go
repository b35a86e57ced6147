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
)

func TestRatingService_Rate_RejectsOutOfRangeScore(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	user := &domain.User{ID: 1}
	for _, score := range []int{0, -1, 6, 100} {
		_, err := svc.Rate(context.Background(), user, 10, score)
		assertAppError(t, err, http.StatusBadRequest, "Score must be between 1 and 5")
	}
}

func TestRatingService_Rate_RejectsOwnImage(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 1}, nil
	}

	_, err := svc.Rate(context.Background(), &domain.User{ID: 1}, 10, 4)
	assertAppError(t, err, http.StatusBadRequest, "You cannot rate your own image")
}

func TestRatingService_Rate_OnePerUserPerImage(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 2}, nil
	}
	ratingRepo.FindRatingByUserAndImageFn = func(ctx context.Context, userID, imageID int64) (*domain.Rating, error) {
		return &domain.Rating{UserID: userID, ImageID: imageID, Score: 3}, nil
	}

	_, err := svc.Rate(context.Background(), &domain.User{ID: 1}, 10, 4)
	assertAppError(t, err, http.StatusConflict, "You have already rated this image")
}

func TestRatingService_Rate_MapsRepositoryDuplicate(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 2}, nil
	}
	ratingRepo.FindRatingByUserAndImageFn = func(ctx context.Context, userID, imageID int64) (*domain.Rating, error) {
		return nil, apperrors.ErrNotFound
	}
	// Concurrent insert slips past the pre-check and hits the unique index
	ratingRepo.SaveRatingFn = func(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
		return nil, apperrors.ErrDuplicate
	}

	_, err := svc.Rate(context.Background(), &domain.User{ID: 1}, 10, 4)
	assertAppError(t, err, http.StatusConflict, "You have already rated this image")
}

func TestRatingService_Rate_Success(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 2}, nil
	}
	ratingRepo.FindRatingByUserAndImageFn = func(ctx context.Context, userID, imageID int64) (*domain.Rating, error) {
		return nil, apperrors.ErrNotFound
	}
	ratingRepo.SaveRatingFn = func(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
		rating.ID = 7
		return &rating, nil
	}

	rating, err := svc.Rate(context.Background(), &domain.User{ID: 1}, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rating.ID)
	assert.Equal(t, int64(1), rating.UserID)
	assert.Equal(t, int64(10), rating.ImageID)
	assert.Equal(t, 4, rating.Score)
}

func TestRatingService_Average(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 2}, nil
	}

	t.Run("no ratings", func(t *testing.T) {
		ratingRepo.FindRatingsByImageFn = func(ctx context.Context, imageID int64) ([]domain.Rating, error) {
			return nil, nil
		}
		_, err := svc.Average(context.Background(), 10)
		assertAppError(t, err, http.StatusNotFound, "No ratings for this image")
	})

	t.Run("two decimal places", func(t *testing.T) {
		ratingRepo.FindRatingsByImageFn = func(ctx context.Context, imageID int64) ([]domain.Rating, error) {
			return []domain.Rating{{Score: 4}, {Score: 5}, {Score: 4}}, nil
		}
		avg, err := svc.Average(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "4.33", avg.Average)
		assert.Equal(t, int64(10), avg.ImageID)
	})

	t.Run("whole number keeps trailing zeros", func(t *testing.T) {
		ratingRepo.FindRatingsByImageFn = func(ctx context.Context, imageID int64) ([]domain.Rating, error) {
			return []domain.Rating{{Score: 5}, {Score: 5}}, nil
		}
		avg, err := svc.Average(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "5.00", avg.Average)
	})
}

func TestRatingService_Delete_ModeratorOnly(t *testing.T) {
	ratingRepo := &MockRatingRepository{}
	imageRepo := &MockImageRepository{}
	svc := services.NewRatingService(ratingRepo, imageRepo)

	ratingRepo.FindRatingByIDFn = func(ctx context.Context, ratingID int64) (*domain.Rating, error) {
		return &domain.Rating{ID: ratingID, UserID: 1}, nil
	}

	// Regular users cannot delete ratings, not even their own
	err := svc.Delete(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 7)
	assertAppError(t, err, http.StatusForbidden, "Operation forbidden")

	var deleted bool
	ratingRepo.DeleteRatingFn = func(ctx context.Context, ratingID int64) error {
		deleted = true
		return nil
	}
	require.NoError(t, svc.Delete(context.Background(), &domain.User{ID: 9, Role: domain.RoleModerator}, 7))
	assert.True(t, deleted)
}
