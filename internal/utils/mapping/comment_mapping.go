package mapping

import (
	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/models"
)

// ToDomainComment converts a model Comment to a domain Comment.
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		Content:   m.Content,
		UserID:    m.UserID,
		ImageID:   m.ImageID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainCommentSlice converts a slice of model Comments to domain Comments.
func ToDomainCommentSlice(ms []models.Comment) []domain.Comment {
	ds := make([]domain.Comment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainComment(m)
	}
	return ds
}
