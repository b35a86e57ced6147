package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// ratingService implements RatingSvcFacade.
type ratingService struct {
	ratingRepo portsrepo.RatingRepositoryFacade
	imageRepo  portsrepo.ImageRepositoryFacade
}

// NewRatingService creates a new instance of ratingService.
func NewRatingService(ratingRepo portsrepo.RatingRepositoryFacade, imageRepo portsrepo.ImageRepositoryFacade) portssvc.RatingSvcFacade {
	return &ratingService{ratingRepo: ratingRepo, imageRepo: imageRepo}
}

// Rate records a score for an image. One rating per user per image, and
// rating your own image is rejected.
func (s *ratingService) Rate(ctx context.Context, user *domain.User, imageID int64, score int) (*domain.Rating, error) {
	if score < domain.MinRatingScore || score > domain.MaxRatingScore {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Score must be between %d and %d", domain.MinRatingScore, domain.MaxRatingScore))
	}

	image, err := s.imageRepo.FindImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Image not found")
		}
		return nil, fmt.Errorf("failed to look up image: %w", err)
	}
	if image.UserID == user.ID {
		return nil, apperrors.NewBadRequestError("You cannot rate your own image")
	}

	if _, err := s.ratingRepo.FindRatingByUserAndImage(ctx, user.ID, imageID); err == nil {
		return nil, apperrors.NewConflictError("You have already rated this image")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}

	rating := domain.Rating{
		UserID:  user.ID,
		ImageID: imageID,
		Score:   score,
	}
	saved, err := s.ratingRepo.SaveRating(ctx, rating)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("You have already rated this image")
		}
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}
	return saved, nil
}

// Average computes the image's mean score with decimal arithmetic,
// rounded to two places.
func (s *ratingService) Average(ctx context.Context, imageID int64) (*dto.AverageRatingResponse, error) {
	if _, err := s.imageRepo.FindImageByID(ctx, imageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Image not found")
		}
		return nil, fmt.Errorf("failed to look up image: %w", err)
	}

	ratings, err := s.ratingRepo.FindRatingsByImage(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	if len(ratings) == 0 {
		return nil, apperrors.NewNotFoundError("No ratings for this image")
	}

	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r.Score)))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2)

	return &dto.AverageRatingResponse{
		ImageID: imageID,
		Average: avg.StringFixed(2),
	}, nil
}

// Delete removes a rating. Restricted to moderators and admins.
func (s *ratingService) Delete(ctx context.Context, actor *domain.User, ratingID int64) error {
	if !actor.Role.CanModerate() {
		return apperrors.NewForbiddenError("Operation forbidden")
	}
	if _, err := s.ratingRepo.FindRatingByID(ctx, ratingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Rating not found")
		}
		return fmt.Errorf("failed to look up rating: %w", err)
	}
	if err := s.ratingRepo.DeleteRating(ctx, ratingID); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}
