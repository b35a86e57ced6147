package mapping

import (
	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/models"
)

// ToDomainImage converts a model Image plus its loaded tags to a domain Image.
func ToDomainImage(m models.Image, tags []models.Tag) domain.Image {
	return domain.Image{
		ID:             m.ID,
		URL:            m.URL,
		TransformedURL: m.TransformedURL.String,
		Content:        m.Content,
		UserID:         m.UserID,
		Tags:           ToDomainTagSlice(tags),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainTag converts a model Tag to a domain Tag.
func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{ID: m.ID, Name: m.Name}
}

// ToDomainTagSlice converts a slice of model Tags to domain Tags.
func ToDomainTagSlice(ms []models.Tag) []domain.Tag {
	ds := make([]domain.Tag, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTag(m)
	}
	return ds
}
