package domain

import "time"

// MaxTagsPerImage caps the number of tags an image may carry.
const MaxTagsPerImage = 5

// Image represents an uploaded picture with its description and tags.
type Image struct {
	ID             int64     `json:"id"`
	URL            string    `json:"imageURL"`
	TransformedURL string    `json:"imageTransformedURL,omitempty"`
	Content        string    `json:"content"`
	UserID         int64     `json:"userID"`
	Tags           []Tag     `json:"tags"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Tag is a label attachable to images, unique by name.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
