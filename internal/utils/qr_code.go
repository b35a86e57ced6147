package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodeBase64 renders a URL as a PNG QR code and returns it base64
// encoded, ready for embedding in a JSON response.
func QRCodeBase64(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Low, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
