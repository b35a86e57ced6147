package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	"github.com/snapshare/snapshare-api/internal/core/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

func TestSearchService_ComposesAllFilters(t *testing.T) {
	searchRepo := &MockSearchRepository{}
	svc := services.NewSearchService(searchRepo)

	var gotFilter portsrepo.ImageSearchFilter
	searchRepo.SearchImagesFn = func(ctx context.Context, filter portsrepo.ImageSearchFilter) ([]domain.Image, error) {
		gotFilter = filter
		return []domain.Image{{ID: 1}}, nil
	}

	minRating, maxRating := 2, 4
	images, err := svc.Search(context.Background(), dto.SearchParams{
		Keyword:   "sunset",
		Tag:       "nature",
		MinRating: &minRating,
		MaxRating: &maxRating,
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Len(t, images, 1)

	assert.Equal(t, "sunset", gotFilter.Keyword)
	assert.Equal(t, "nature", gotFilter.Tag)
	require.NotNil(t, gotFilter.MinRating)
	assert.Equal(t, 2, *gotFilter.MinRating)
	require.NotNil(t, gotFilter.MaxRating)
	assert.Equal(t, 4, *gotFilter.MaxRating)

	require.NotNil(t, gotFilter.StartDate)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *gotFilter.StartDate)
	// The end date bound is inclusive, so it covers the whole day
	require.NotNil(t, gotFilter.EndDate)
	assert.True(t, gotFilter.EndDate.After(time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.True(t, gotFilter.EndDate.Before(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSearchService_NoFiltersPassesEmptyFilter(t *testing.T) {
	searchRepo := &MockSearchRepository{}
	svc := services.NewSearchService(searchRepo)

	var gotFilter portsrepo.ImageSearchFilter
	searchRepo.SearchImagesFn = func(ctx context.Context, filter portsrepo.ImageSearchFilter) ([]domain.Image, error) {
		gotFilter = filter
		return nil, nil
	}

	_, err := svc.Search(context.Background(), dto.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, portsrepo.ImageSearchFilter{}, gotFilter)
}

func TestSearchService_RejectsInvalidFilters(t *testing.T) {
	searchRepo := &MockSearchRepository{}
	svc := services.NewSearchService(searchRepo)

	t.Run("rating out of range", func(t *testing.T) {
		zero, six := 0, 6
		_, err := svc.Search(context.Background(), dto.SearchParams{MinRating: &zero})
		assertAppError(t, err, http.StatusBadRequest, "Invalid rating filter")

		_, err = svc.Search(context.Background(), dto.SearchParams{MaxRating: &six})
		assertAppError(t, err, http.StatusBadRequest, "Invalid rating filter")
	})

	t.Run("malformed dates", func(t *testing.T) {
		_, err := svc.Search(context.Background(), dto.SearchParams{StartDate: "01.06.2026"})
		assertAppError(t, err, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")

		_, err = svc.Search(context.Background(), dto.SearchParams{EndDate: "yesterday"})
		assertAppError(t, err, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
	})
}
