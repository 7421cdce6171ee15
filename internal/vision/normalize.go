package vision

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// TargetSize is the classifier input edge length in pixels.
const TargetSize = 48

// Mode selects how pixel intensities are scaled into the tensor.
type Mode string

const (
	// ModeSimple maps intensities into [0, 1].
	ModeSimple Mode = "simple"
	// ModeCentered maps intensities into [-1, 1], matching the
	// training-time normalization of the v2 model family.
	ModeCentered Mode = "centered"
)

// ParseMode validates a configured normalization mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSimple, ModeCentered:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown normalize mode %q (supported: %s, %s)", s, ModeSimple, ModeCentered)
	}
}

// Tensor is a classifier-ready buffer of shape (Batch, Height, Width, Channels),
// row-major. It lives for a single inference call.
type Tensor struct {
	Data     []float32
	Batch    int
	Height   int
	Width    int
	Channels int
}

// Shape returns the tensor dimensions in NHWC order.
func (t Tensor) Shape() []int {
	return []int{t.Batch, t.Height, t.Width, t.Channels}
}

// Crop returns the sub-raster covered by region, clamped to the image
// bounds. An empty intersection falls back to the full raster.
func Crop(gray *image.Gray, region image.Rectangle) *image.Gray {
	r := region.Intersect(gray.Bounds())
	if r.Empty() {
		return gray
	}
	return gray.SubImage(r).(*image.Gray)
}

// Normalize resizes a grayscale raster to TargetSize×TargetSize and scales
// its intensities according to mode. Pure function over its inputs.
func Normalize(gray *image.Gray, mode Mode) Tensor {
	resized := toGray(resize.Resize(TargetSize, TargetSize, gray, resize.Bilinear))

	data := make([]float32, TargetSize*TargetSize)
	bounds := resized.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := float32(resized.GrayAt(x, y).Y) / 255.0
			if mode == ModeCentered {
				v = (v - 0.5) * 2.0
			}
			data[i] = v
			i++
		}
	}

	return Tensor{Data: data, Batch: 1, Height: TargetSize, Width: TargetSize, Channels: 1}
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	return Grayscale(img)
}
