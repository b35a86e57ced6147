package domain

import "time"

// Rating score bounds.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a single user's 1..5 score for an image. One rating per
// (user, image) pair.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userID"`
	ImageID   int64     `json:"imageID"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
