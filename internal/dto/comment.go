package dto

import (
	"time"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// CreateCommentRequest adds a comment to an image.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	ImageID int64  `json:"image_id" binding:"required"`
}

// UpdateCommentRequest replaces a comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	ImageID   int64     `json:"image_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCommentResponse converts a domain Comment to its response DTO.
func ToCommentResponse(d domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        d.ID,
		Content:   d.Content,
		UserID:    d.UserID,
		ImageID:   d.ImageID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToCommentResponseSlice converts a slice of domain Comments to response DTOs.
func ToCommentResponseSlice(ds []domain.Comment) []CommentResponse {
	rs := make([]CommentResponse, len(ds))
	for i, d := range ds {
		rs[i] = ToCommentResponse(d)
	}
	return rs
}
