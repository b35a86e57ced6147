package dto

import "github.com/snapshare/snapshare-api/internal/core/domain"

// RatingRequest carries a 1..5 score for an image.
type RatingRequest struct {
	Score int `json:"score" binding:"required"`
}

// RatingResponse is the API representation of a rating.
type RatingResponse struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	ImageID int64 `json:"image_id"`
	Score   int   `json:"score"`
}

// AverageRatingResponse reports an image's average score to two decimal
// places.
type AverageRatingResponse struct {
	ImageID int64  `json:"image_id"`
	Average string `json:"average"`
}

// ToRatingResponse converts a domain Rating to its response DTO.
func ToRatingResponse(d domain.Rating) RatingResponse {
	return RatingResponse{ID: d.ID, UserID: d.UserID, ImageID: d.ImageID, Score: d.Score}
}
