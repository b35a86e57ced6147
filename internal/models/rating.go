package models

// Rating represents a row of the ratings table.
type Rating struct {
	ID      int64 `db:"id"`
	UserID  int64 `db:"user_id"`
	ImageID int64 `db:"image_id"`
	Score   int   `db:"rating_score"`
	Timestamps
}
