package dto

import "github.com/snapshare/snapshare-api/internal/core/domain"

// TagRequest creates or renames a tag.
type TagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// TagResponse is the API representation of a tag.
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToTagResponse converts a domain Tag to its response DTO.
func ToTagResponse(d domain.Tag) TagResponse {
	return TagResponse{ID: d.ID, Name: d.Name}
}

// ToTagResponseSlice converts a slice of domain Tags to response DTOs.
func ToTagResponseSlice(ds []domain.Tag) []TagResponse {
	rs := make([]TagResponse, len(ds))
	for i, d := range ds {
		rs[i] = ToTagResponse(d)
	}
	return rs
}
