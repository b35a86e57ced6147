package services_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/core/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

func TestImageService_Upload_EnforcesTagLimit(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	req := dto.CreateImageRequest{
		Content: "too many tags",
		Tags:    []string{"a", "b", "c", "d", "e", "f"},
	}
	_, err := svc.Upload(context.Background(), &domain.User{ID: 1}, &multipart.FileHeader{}, req)
	assertAppError(t, err, http.StatusBadRequest, "Maximum 5 tags allowed")
}

func TestImageService_ListByUser_ClampsPagination(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	var gotSkip, gotLimit int
	imageRepo.FindImagesByUserFn = func(ctx context.Context, userID int64, skip, limit int) ([]domain.Image, error) {
		gotSkip, gotLimit = skip, limit
		return nil, nil
	}

	_, err := svc.ListByUser(context.Background(), 1, -5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, gotSkip)
	assert.Equal(t, 10, gotLimit)

	_, err = svc.ListByUser(context.Background(), 1, 20, 1000)
	require.NoError(t, err)
	assert.Equal(t, 20, gotSkip)
	assert.Equal(t, 100, gotLimit)
}

func TestImageService_UpdateContent_OwnerOrModerator(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 1, Content: "old"}, nil
	}

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.UpdateContent(context.Background(), &domain.User{ID: 2, Role: domain.RoleUser}, 10, "new")
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})

	t.Run("owner may edit", func(t *testing.T) {
		var updated domain.Image
		imageRepo.UpdateImageFn = func(ctx context.Context, image domain.Image) error {
			updated = image
			return nil
		}
		_, err := svc.UpdateContent(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 10, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Content)
	})

	t.Run("moderator may edit", func(t *testing.T) {
		imageRepo.UpdateImageFn = func(ctx context.Context, image domain.Image) error { return nil }
		_, err := svc.UpdateContent(context.Background(), &domain.User{ID: 9, Role: domain.RoleModerator}, 10, "new")
		assert.NoError(t, err)
	})
}

func TestImageService_AddTag(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	owner := &domain.User{ID: 1, Role: domain.RoleUser}

	t.Run("rejects when image is full", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return &domain.Image{ID: imageID, UserID: 1, Tags: []domain.Tag{
				{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"},
			}}, nil
		}
		_, err := svc.AddTag(context.Background(), owner, dto.AddTagRequest{ImageID: 10, Tag: "f"})
		assertAppError(t, err, http.StatusBadRequest, "Maximum 5 tags allowed")
	})

	t.Run("is idempotent for an already attached tag", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return &domain.Image{ID: imageID, UserID: 1, Tags: []domain.Tag{{Name: "cats"}}}, nil
		}
		imageRepo.AddImageTagFn = func(ctx context.Context, imageID int64, tagName string) error {
			t.Fatal("no link must be written for an attached tag")
			return nil
		}
		image, err := svc.AddTag(context.Background(), owner, dto.AddTagRequest{ImageID: 10, Tag: "cats"})
		require.NoError(t, err)
		assert.Len(t, image.Tags, 1)
	})

	t.Run("links a new tag", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return &domain.Image{ID: imageID, UserID: 1, Tags: []domain.Tag{{Name: "cats"}}}, nil
		}
		var linked string
		imageRepo.AddImageTagFn = func(ctx context.Context, imageID int64, tagName string) error {
			linked = tagName
			return nil
		}
		_, err := svc.AddTag(context.Background(), owner, dto.AddTagRequest{ImageID: 10, Tag: "dogs"})
		require.NoError(t, err)
		assert.Equal(t, "dogs", linked)
	})
}

func TestImageService_Transform(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 1, URL: "https://cdn.example.com/bucket/images/x.jpg"}, nil
	}

	owner := &domain.User{ID: 1, Role: domain.RoleUser}

	t.Run("unknown transformation type", func(t *testing.T) {
		_, err := svc.Transform(context.Background(), owner, 10, dto.TransformRequest{Type: "sharpen"})
		assertAppError(t, err, http.StatusBadRequest, "Invalid transformation type")
	})

	t.Run("resize persists the derived URL and renders a QR code", func(t *testing.T) {
		var storedURL string
		imageRepo.SetTransformedURLFn = func(ctx context.Context, imageID int64, url string) error {
			storedURL = url
			return nil
		}

		result, err := svc.Transform(context.Background(), owner, 10, dto.TransformRequest{
			Type:  "resize",
			Width: 200, Height: 100,
		})
		require.NoError(t, err)
		assert.Equal(t, result.TransformedURL, storedURL)
		assert.Contains(t, result.TransformedURL, "200")
		assert.NotEmpty(t, result.QRCode)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.Transform(context.Background(), &domain.User{ID: 2, Role: domain.RoleUser}, 10, dto.TransformRequest{Type: "resize", Width: 10, Height: 10})
		assertAppError(t, err, http.StatusForbidden, "Operation forbidden")
	})
}

func TestImageService_GetTransformed(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	t.Run("no transformed version yet", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return &domain.Image{ID: imageID, UserID: 1, URL: "https://cdn.example.com/bucket/images/x.jpg"}, nil
		}
		_, err := svc.GetTransformed(context.Background(), 10)
		assertAppError(t, err, http.StatusNotFound, "Image has no transformed version")
	})

	t.Run("returns the stored URL with a QR code", func(t *testing.T) {
		imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
			return &domain.Image{
				ID:             imageID,
				UserID:         1,
				URL:            "https://cdn.example.com/bucket/images/x.jpg",
				TransformedURL: "https://cdn.example.com/bucket/images/x.jpg?type=resize&width=200",
			}, nil
		}
		result, err := svc.GetTransformed(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/bucket/images/x.jpg?type=resize&width=200", result.TransformedURL)
		assert.NotEmpty(t, result.QRCode)
	})
}

func TestImageService_Delete_RemovesStoredObject(t *testing.T) {
	imageRepo := &MockImageRepository{}
	storage := &MockObjectStorage{}
	svc := services.NewImageService(imageRepo, storage)

	imageRepo.FindImageByIDFn = func(ctx context.Context, imageID int64) (*domain.Image, error) {
		return &domain.Image{ID: imageID, UserID: 1, URL: "https://cdn.example.com/bucket/images/x.jpg"}, nil
	}

	var recordDeleted bool
	imageRepo.DeleteImageFn = func(ctx context.Context, imageID int64) error {
		recordDeleted = true
		return nil
	}
	var objectDeleted string
	storage.DeleteFn = func(ctx context.Context, objectName string) error {
		objectDeleted = objectName
		return nil
	}

	require.NoError(t, svc.Delete(context.Background(), &domain.User{ID: 1, Role: domain.RoleUser}, 10))
	assert.True(t, recordDeleted)
	assert.True(t, strings.HasPrefix(objectDeleted, "images/"))
}
