package services

import (
	"context"
	"mime/multipart"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// ImageSvcFacade covers image upload, retrieval, transformation and
// removal.
type ImageSvcFacade interface {
	// Upload stores the file in object storage and persists the record
	// with up to the tag limit of tags.
	Upload(ctx context.Context, user *domain.User, file *multipart.FileHeader, req dto.CreateImageRequest) (*domain.Image, error)
	GetByID(ctx context.Context, imageID int64) (*domain.Image, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]domain.Image, error)
	// UpdateContent edits the description. Owner or moderator only.
	UpdateContent(ctx context.Context, actor *domain.User, imageID int64, content string) (*domain.Image, error)
	// AddTag attaches one more tag, enforcing the per-image limit.
	AddTag(ctx context.Context, actor *domain.User, req dto.AddTagRequest) (*domain.Image, error)
	// Transform derives a variant URL, persists it and returns it with a
	// QR code.
	Transform(ctx context.Context, actor *domain.User, imageID int64, req dto.TransformRequest) (*dto.TransformedImageResponse, error)
	// GetTransformed returns the stored variant URL with a fresh QR code.
	GetTransformed(ctx context.Context, imageID int64) (*dto.TransformedImageResponse, error)
	// Delete removes the record and the stored object. Owner or
	// moderator only.
	Delete(ctx context.Context, actor *domain.User, imageID int64) error
}
