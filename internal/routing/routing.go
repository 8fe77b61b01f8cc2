// Package routing turns two coordinate pairs into a Google Maps directions
// link plus a QR code of that link, so an officer can scan a screen instead
// of retyping a URL on a handset.
package routing

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Directions is the result of Build: a navigable URL and the same URL encoded
// as a PNG QR code, inlined as a data URL for direct use in an <img> tag.
type Directions struct {
	DirectionsURL string `json:"directions_url"`
	QRCodeBase64  string `json:"qr_code_base64"`
}

// qrSize is the rendered QR image edge in pixels.
const qrSize = 256

// Build produces directions from origin to destination. It is a pure
// function; the only failure modes are out-of-range coordinates and QR
// encoding errors.
func Build(originLat, originLng, destLat, destLng float64) (*Directions, error) {
	for _, c := range []struct {
		name string
		val  float64
		max  float64
	}{
		{"origin latitude", originLat, 90},
		{"origin longitude", originLng, 180},
		{"destination latitude", destLat, 90},
		{"destination longitude", destLng, 180},
	} {
		if c.val < -c.max || c.val > c.max {
			return nil, fmt.Errorf("%s %v out of range", c.name, c.val)
		}
	}

	url := fmt.Sprintf("https://www.google.com/maps/dir/%v,%v/%v,%v",
		originLat, originLng, destLat, destLng)

	png, err := qrcode.Encode(url, qrcode.Low, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	return &Directions{
		DirectionsURL: url,
		QRCodeBase64:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
