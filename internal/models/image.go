package models

import "database/sql"

// Image represents a row of the images table. Tags live in the
// image_m2m_tags join table and are loaded separately.
type Image struct {
	ID             int64          `db:"id"`
	URL            string         `db:"image_url"`
	TransformedURL sql.NullString `db:"image_transformed_url"`
	Content        string         `db:"content"`
	UserID         int64          `db:"user_id"`
	Timestamps
}

// Tag represents a row of the tags table.
type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
