// Package qr encodes a URL as a PNG QR code.
package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultFilename is the file name the README references for the QR image.
const DefaultFilename = "portfolio-qr.png"

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

// ErrEmptyURL is returned when there is nothing to encode.
var ErrEmptyURL = errors.New("qr: url is empty")

// Encode returns a DefaultSize PNG image of a QR code for url.
func Encode(url string) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	png, err := qrcode.Encode(url, qrcode.Medium, DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return png, nil
}
