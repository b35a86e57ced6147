package repositories

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// ImageReader defines read operations for image data
type ImageReader interface {
	// FindImageByID retrieves an image with its tags.
	FindImageByID(ctx context.Context, imageID int64) (*domain.Image, error)

	// FindImagesByUser retrieves a page of a user's images.
	FindImagesByUser(ctx context.Context, userID int64, skip int, limit int) ([]domain.Image, error)

	// CountImagesByUser returns the number of images a user has uploaded.
	CountImagesByUser(ctx context.Context, userID int64) (int64, error)
}

// ImageWriter defines write operations for image data
type ImageWriter interface {
	// SaveImage persists a new image, creating any tags that do not exist
	// yet and linking them.
	SaveImage(ctx context.Context, image domain.Image, tagNames []string) (*domain.Image, error)

	// UpdateImage updates the mutable attributes (URL, content) of an image.
	UpdateImage(ctx context.Context, image domain.Image) error

	// SetTransformedURL stores the derived transformation URL for an image.
	SetTransformedURL(ctx context.Context, imageID int64, url string) error

	// AddImageTag links a tag (created if missing) to an image.
	AddImageTag(ctx context.Context, imageID int64, tagName string) error

	// DeleteImage removes an image and its tag links.
	DeleteImage(ctx context.Context, imageID int64) error
}

// ImageRepositoryFacade combines all image-related repository interfaces
type ImageRepositoryFacade interface {
	ImageReader
	ImageWriter
}
