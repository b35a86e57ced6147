package repositories

import (
	"context"
	"time"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// ImageSearchFilter holds the optional, composable search criteria.
// Nil/zero fields are skipped.
type ImageSearchFilter struct {
	Keyword   string
	Tag       string
	MinRating *int
	MaxRating *int
	StartDate *time.Time
	EndDate   *time.Time
}

// SearchRepositoryFacade runs filtered image searches.
type SearchRepositoryFacade interface {
	// SearchImages returns images matching every provided filter.
	SearchImages(ctx context.Context, filter ImageSearchFilter) ([]domain.Image, error)
}
