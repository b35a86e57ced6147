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

func TestTagService_Create_NormalizesName(t *testing.T) {
	tagRepo := &MockTagRepository{}
	svc := services.NewTagService(tagRepo)

	var savedName string
	tagRepo.SaveTagFn = func(ctx context.Context, name string) (*domain.Tag, error) {
		savedName = name
		return &domain.Tag{ID: 1, Name: name}, nil
	}

	tag, err := svc.Create(context.Background(), "  Sunset Photos ")
	require.NoError(t, err)
	assert.Equal(t, "sunset photos", savedName)
	assert.Equal(t, "sunset photos", tag.Name)

	_, err = svc.Create(context.Background(), "   ")
	assertAppError(t, err, http.StatusBadRequest, "Tag name must not be empty")
}

func TestTagService_List_ClampsPagination(t *testing.T) {
	tagRepo := &MockTagRepository{}
	svc := services.NewTagService(tagRepo)

	var gotOffset, gotLimit int
	tagRepo.FindTagsFn = func(ctx context.Context, offset int, limit int) ([]domain.Tag, error) {
		gotOffset, gotLimit = offset, limit
		return nil, nil
	}

	_, err := svc.List(context.Background(), -1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 10, gotLimit)

	_, err = svc.List(context.Background(), 5, 1000)
	require.NoError(t, err)
	assert.Equal(t, 5, gotOffset)
	assert.Equal(t, 100, gotLimit)
}

func TestTagService_Update(t *testing.T) {
	tagRepo := &MockTagRepository{}
	svc := services.NewTagService(tagRepo)

	tagRepo.FindTagByIDFn = func(ctx context.Context, tagID int64) (*domain.Tag, error) {
		return &domain.Tag{ID: tagID, Name: "cats"}, nil
	}

	t.Run("regular user is rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 3, "kittens")
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})

	t.Run("duplicate name", func(t *testing.T) {
		tagRepo.UpdateTagFn = func(ctx context.Context, tagID int64, name string) (*domain.Tag, error) {
			return nil, apperrors.ErrDuplicate
		}
		_, err := svc.Update(context.Background(), &domain.User{ID: 9, Role: domain.RoleModerator}, 3, "dogs")
		assertAppError(t, err, http.StatusConflict, "Tag name already in use")
	})

	t.Run("moderator renames", func(t *testing.T) {
		tagRepo.UpdateTagFn = func(ctx context.Context, tagID int64, name string) (*domain.Tag, error) {
			return &domain.Tag{ID: tagID, Name: name}, nil
		}
		tag, err := svc.Update(context.Background(), &domain.User{ID: 9, Role: domain.RoleModerator}, 3, "Kittens")
		require.NoError(t, err)
		assert.Equal(t, "kittens", tag.Name)
	})
}

func TestTagService_Delete_ModeratorOnly(t *testing.T) {
	tagRepo := &MockTagRepository{}
	svc := services.NewTagService(tagRepo)

	tagRepo.FindTagByIDFn = func(ctx context.Context, tagID int64) (*domain.Tag, error) {
		return &domain.Tag{ID: tagID, Name: "cats"}, nil
	}

	err := svc.Delete(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 3)
	assertAppError(t, err, http.StatusForbidden, "Operation forbidden")

	var deleted bool
	tagRepo.DeleteTagFn = func(ctx context.Context, tagID int64) error {
		deleted = true
		return nil
	}
	require.NoError(t, svc.Delete(context.Background(), &domain.User{ID: 9, Role: domain.RoleAdmin}, 3))
	assert.True(t, deleted)
}
