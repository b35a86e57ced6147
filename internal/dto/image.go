package dto

import (
	"time"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// CreateImageRequest accompanies the uploaded file as multipart form fields.
type CreateImageRequest struct {
	Content string   `form:"content" binding:"required"`
	Tags    []string `form:"tags"`
}

// UpdateImageRequest updates an image's description.
// Pointer distinguishes omitted from empty.
type UpdateImageRequest struct {
	Content *string `json:"content"`
}

// AddTagRequest attaches one more tag to an image.
type AddTagRequest struct {
	ImageID int64  `json:"image_id" binding:"required"`
	Tag     string `json:"tag" binding:"required"`
}

// TransformRequest describes a requested image variant.
type TransformRequest struct {
	Type    string `form:"transformation_type" binding:"required"`
	Width   int    `form:"width"`
	Height  int    `form:"height"`
	Effect  string `form:"effect"`
	Overlay string `form:"overlay_image_url"`
}

// ImageResponse is the API representation of an image.
type ImageResponse struct {
	ID             int64         `json:"id"`
	ImageURL       string        `json:"image_url"`
	TransformedURL string        `json:"image_transformed_url,omitempty"`
	Content        string        `json:"content"`
	UserID         int64         `json:"user_id"`
	Tags           []TagResponse `json:"tags"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// TransformedImageResponse returns the original URL, the derived variant
// URL and a base64 PNG QR code pointing at the variant.
type TransformedImageResponse struct {
	ImageURL       string `json:"image_url"`
	TransformedURL string `json:"image_transformed_url"`
	QRCode         string `json:"qr_code"`
}

// ToImageResponse converts a domain Image to its response DTO.
func ToImageResponse(d domain.Image) ImageResponse {
	return ImageResponse{
		ID:             d.ID,
		ImageURL:       d.URL,
		TransformedURL: d.TransformedURL,
		Content:        d.Content,
		UserID:         d.UserID,
		Tags:           ToTagResponseSlice(d.Tags),
		CreatedAt:      d.CreatedAt,
	}
}

// ToImageResponseSlice converts a slice of domain Images to response DTOs.
func ToImageResponseSlice(ds []domain.Image) []ImageResponse {
	rs := make([]ImageResponse, len(ds))
	for i, d := range ds {
		rs[i] = ToImageResponse(d)
	}
	return rs
}
