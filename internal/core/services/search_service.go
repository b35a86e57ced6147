package services

import (
	"context"
	"fmt"
	"time"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

const searchDateLayout = "2006-01-02"

// searchService implements SearchSvcFacade.
type searchService struct {
	searchRepo portsrepo.SearchRepositoryFacade
}

// NewSearchService creates a new instance of searchService.
func NewSearchService(searchRepo portsrepo.SearchRepositoryFacade) portssvc.SearchSvcFacade {
	return &searchService{searchRepo: searchRepo}
}

func (s *searchService) Search(ctx context.Context, params dto.SearchParams) ([]domain.Image, error) {
	filter := portsrepo.ImageSearchFilter{
		Keyword:   params.Keyword,
		Tag:       params.Tag,
		MinRating: params.MinRating,
		MaxRating: params.MaxRating,
	}

	if params.MinRating != nil && (*params.MinRating < domain.MinRatingScore || *params.MinRating > domain.MaxRatingScore) {
		return nil, apperrors.NewBadRequestError("Invalid rating filter")
	}
	if params.MaxRating != nil && (*params.MaxRating < domain.MinRatingScore || *params.MaxRating > domain.MaxRatingScore) {
		return nil, apperrors.NewBadRequestError("Invalid rating filter")
	}

	if params.StartDate != "" {
		start, err := time.Parse(searchDateLayout, params.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid start_date, expected YYYY-MM-DD")
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := time.Parse(searchDateLayout, params.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid end_date, expected YYYY-MM-DD")
		}
		// Inclusive upper bound: advance to the end of the day.
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	images, err := s.searchRepo.SearchImages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search images: %w", err)
	}
	return images, nil
}
