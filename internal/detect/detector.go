package detect

import (
	"fmt"
	"image"

	pigo "github.com/esimov/pigo/core"
)

// Params configures the cascade run. Values mirror the detector settings
// the emotion model was validated against.
type Params struct {
	MinSize          int
	MaxSize          int
	ShiftFactor      float64
	ScaleFactor      float64
	ClusterThreshold float64
	QualityThreshold float32
}

// DefaultParams returns the serving configuration: 30px minimum face,
// 1.1 scale step and a quality cutoff equivalent to minNeighbors=5.
func DefaultParams() Params {
	return Params{
		MinSize:          30,
		MaxSize:          2000,
		ShiftFactor:      0.1,
		ScaleFactor:      1.1,
		ClusterThreshold: 0.2,
		QualityThreshold: 5.0,
	}
}

// Detector finds face regions in grayscale rasters using a pigo cascade.
type Detector struct {
	classifier *pigo.Pigo
	params     Params
}

// NewDetector unpacks the cascade parameter bytes into a ready detector.
func NewDetector(cascade []byte, params Params) (*Detector, error) {
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}
	return &Detector{classifier: classifier, params: params}, nil
}

// LocateFaces returns zero or more face rectangles in raster coordinates.
// Ordering is whatever the cascade yields; callers that want a single
// face take the first element.
func (d *Detector) LocateFaces(gray *image.Gray) []image.Rectangle {
	bounds := gray.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()

	cParams := pigo.CascadeParams{
		MinSize:     d.params.MinSize,
		MaxSize:     d.params.MaxSize,
		ShiftFactor: d.params.ShiftFactor,
		ScaleFactor: d.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: grayPixels(gray),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(cParams, 0.0)
	dets = d.classifier.ClusterDetections(dets, d.params.ClusterThreshold)

	var rects []image.Rectangle
	for _, det := range dets {
		if det.Q < d.params.QualityThreshold {
			continue
		}
		rects = append(rects, image.Rect(
			det.Col-det.Scale/2,
			det.Row-det.Scale/2,
			det.Col+det.Scale/2,
			det.Row+det.Scale/2,
		))
	}
	return rects
}

// grayPixels flattens the raster into the contiguous row-major buffer
// pigo expects, regardless of the source stride or origin.
func grayPixels(gray *image.Gray) []uint8 {
	bounds := gray.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()

	if bounds.Min == (image.Point{}) && gray.Stride == cols {
		return gray.Pix
	}

	pixels := make([]uint8, cols*rows)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels[i] = gray.GrayAt(x, y).Y
			i++
		}
	}
	return pixels
}
