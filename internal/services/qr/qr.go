package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Image edge length in pixels.
const size = 500

// Encode renders the payload as a black-on-white PNG QR symbol at the
// highest error-correction level, so the code survives being printed small
// or re-photographed. An oversized payload is a hard error; nothing is
// truncated.
func Encode(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}
	return png, nil
}

// EncodeDataURL returns the same image as a data: URI for inline embedding.
func EncodeDataURL(payload string) (string, error) {
	png, err := Encode(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
