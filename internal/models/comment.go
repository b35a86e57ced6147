package models

// Comment represents a row of the comments table.
type Comment struct {
	ID      int64  `db:"id"`
	Content string `db:"content"`
	UserID  int64  `db:"user_id"`
	ImageID int64  `db:"image_id"`
	Timestamps
}
