package service

import (
	"context"
	"image"

	"github.com/google/uuid"

	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/vision"
)

// FaceLocator finds face regions in a grayscale raster. The returned
// order is detector-defined; the pipeline uses element 0 unconditionally.
type FaceLocator interface {
	LocateFaces(gray *image.Gray) []image.Rectangle
}

// EmotionClassifier produces a labeled distribution for a tensor.
type EmotionClassifier interface {
	Classify(ctx context.Context, tensor vision.Tensor) (domain.Distribution, error)
	Ready(ctx context.Context) error
}

// EmotionService runs the inference pipeline: decode, locate a face,
// normalize the region of interest and classify it.
type EmotionService struct {
	locator    FaceLocator
	classifier EmotionClassifier
	mode       vision.Mode
}

// NewEmotionService wires the pipeline. A nil locator skips detection and
// always classifies the whole frame.
func NewEmotionService(locator FaceLocator, classifier EmotionClassifier, mode vision.Mode) *EmotionService {
	return &EmotionService{
		locator:    locator,
		classifier: classifier,
		mode:       mode,
	}
}

// DetectEmotion decodes a base64 (or data-URL) payload and analyzes it.
func (s *EmotionService) DetectEmotion(ctx context.Context, encoded string) (*domain.Analysis, error) {
	raw, err := vision.DecodeBase64(encoded)
	if err != nil {
		return nil, err
	}
	return s.DetectEmotionBytes(ctx, raw)
}

// DetectEmotionBytes analyzes raw encoded image bytes.
//
// When no face is found the whole frame is classified instead of failing;
// a cropped-out or distant face still produces a usable answer.
func (s *EmotionService) DetectEmotionBytes(ctx context.Context, raw []byte) (*domain.Analysis, error) {
	img, err := vision.Decode(raw)
	if err != nil {
		return nil, err
	}

	gray := vision.Grayscale(img)

	roi := gray
	faceDetected := false
	if s.locator != nil {
		if faces := s.locator.LocateFaces(gray); len(faces) > 0 {
			roi = vision.Crop(gray, faces[0])
			faceDetected = true
		}
	}

	tensor := vision.Normalize(roi, s.mode)

	dist, err := s.classifier.Classify(ctx, tensor)
	if err != nil {
		return nil, err
	}

	return &domain.Analysis{
		ID:              uuid.New().String(),
		DominantEmotion: dist.Dominant(),
		Emotions:        dist,
		FaceDetected:    faceDetected,
	}, nil
}

// Ready reports whether the underlying model can serve predictions.
func (s *EmotionService) Ready(ctx context.Context) error {
	return s.classifier.Ready(ctx)
}
