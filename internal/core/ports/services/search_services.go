package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// SearchSvcFacade filters images by keyword, tag, rating and date range.
type SearchSvcFacade interface {
	Search(ctx context.Context, params dto.SearchParams) ([]domain.Image, error)
}
