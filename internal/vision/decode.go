package vision

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	"regexp"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/moodflix/moodflix/internal/domain"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/[^;]+;base64,`)

// DecodeBase64 decodes a base64 payload, stripping an optional
// "data:image/...;base64," prefix, into raw image bytes.
func DecodeBase64(payload string) ([]byte, error) {
	stripped := dataURLPrefix.ReplaceAllString(payload, "")

	raw, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		// Browsers occasionally emit unpadded payloads.
		raw, err = base64.RawStdEncoding.DecodeString(stripped)
	}
	if err != nil {
		return nil, domain.ErrDecode.WithError(err)
	}
	return raw, nil
}

// Decode parses encoded image bytes (jpeg, png, gif, webp or bmp) into an
// image. Malformed bytes surface as a DECODE_ERROR.
func Decode(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.ErrDecode.WithError(err)
	}
	return img, nil
}

// Grayscale converts any decoded image to a single-channel raster using
// the standard luma transform.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}
