package repositories

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// RatingReader defines read operations for rating data
type RatingReader interface {
	// FindRatingByID retrieves a rating by its ID.
	FindRatingByID(ctx context.Context, ratingID int64) (*domain.Rating, error)

	// FindRatingByUserAndImage retrieves the single rating a user gave an image.
	FindRatingByUserAndImage(ctx context.Context, userID int64, imageID int64) (*domain.Rating, error)

	// FindRatingsByImage retrieves every rating for an image.
	FindRatingsByImage(ctx context.Context, imageID int64) ([]domain.Rating, error)
}

// RatingWriter defines write operations for rating data
type RatingWriter interface {
	// SaveRating persists a new rating and returns it with its assigned ID.
	SaveRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error)

	// DeleteRating removes a rating.
	DeleteRating(ctx context.Context, ratingID int64) error
}

// RatingRepositoryFacade combines all rating-related repository interfaces
type RatingRepositoryFacade interface {
	RatingReader
	RatingWriter
}
