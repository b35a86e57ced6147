package repositories

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// TagReader defines read operations for tag data
type TagReader interface {
	// FindTags retrieves a page of tags.
	FindTags(ctx context.Context, offset int, limit int) ([]domain.Tag, error)

	// FindTagByID retrieves a tag by its ID.
	FindTagByID(ctx context.Context, tagID int64) (*domain.Tag, error)

	// FindTagByName retrieves a tag by its unique name.
	FindTagByName(ctx context.Context, name string) (*domain.Tag, error)
}

// TagWriter defines write operations for tag data
type TagWriter interface {
	// SaveTag creates a tag, or returns the existing one with that name.
	SaveTag(ctx context.Context, name string) (*domain.Tag, error)

	// UpdateTag renames a tag.
	UpdateTag(ctx context.Context, tagID int64, name string) (*domain.Tag, error)

	// DeleteTag removes a tag and its image links.
	DeleteTag(ctx context.Context, tagID int64) error
}

// TagRepositoryFacade combines all tag-related repository interfaces
type TagRepositoryFacade interface {
	TagReader
	TagWriter
}
