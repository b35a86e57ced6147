package utils

import (
	"fmt"
	"net/url"
)

// TransformParams describe an on-the-fly image variant. The variant is
// encoded as query parameters on the delivery URL and resolved by the
// image proxy in front of the object store.
type TransformParams struct {
	Type    string // resize, crop, effect, face_detect
	Width   int
	Height  int
	Effect  string
	Overlay string
}

var transformTypes = map[string]bool{
	"resize":      true,
	"crop":        true,
	"effect":      true,
	"face_detect": true,
}

// ValidTransformType reports whether the transformation type is supported.
func ValidTransformType(t string) bool {
	return transformTypes[t]
}

// BuildTransformURL derives the delivery URL of a transformed image
// variant from the original image URL and the requested parameters.
func BuildTransformURL(imageURL string, p TransformParams) (string, error) {
	if !ValidTransformType(p.Type) {
		return "", fmt.Errorf("unsupported transformation type %q", p.Type)
	}
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image URL: %w", err)
	}

	q := u.Query()
	q.Set("t", p.Type)
	if p.Width > 0 {
		q.Set("w", fmt.Sprintf("%d", p.Width))
	}
	if p.Height > 0 {
		q.Set("h", fmt.Sprintf("%d", p.Height))
	}
	if p.Effect != "" {
		q.Set("e", p.Effect)
	}
	if p.Overlay != "" {
		q.Set("o", p.Overlay)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
