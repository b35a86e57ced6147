package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// RatingSvcFacade covers scoring images.
type RatingSvcFacade interface {
	// Rate records a 1..5 score. One rating per user per image, and
	// never on the rater's own image.
	Rate(ctx context.Context, user *domain.User, imageID int64, score int) (*domain.Rating, error)
	// Average computes the image's mean score to two decimal places.
	Average(ctx context.Context, imageID int64) (*dto.AverageRatingResponse, error)
	// Delete removes a rating. Moderator or admin only.
	Delete(ctx context.Context, actor *domain.User, ratingID int64) error
}
