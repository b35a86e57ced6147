package mapping

import (
	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/models"
)

// ToDomainRating converts a model Rating to a domain Rating.
func ToDomainRating(m models.Rating) domain.Rating {
	return domain.Rating{
		ID:        m.ID,
		UserID:    m.UserID,
		ImageID:   m.ImageID,
		Score:     m.Score,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainRatingSlice converts a slice of model Ratings to domain Ratings.
func ToDomainRatingSlice(ms []models.Rating) []domain.Rating {
	ds := make([]domain.Rating, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRating(m)
	}
	return ds
}
