// Package mock provides a deterministic predictor for development and
// tests, so the service can run without a model server.
package mock

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/vision"
)

// Predictor implements classifier.Predictor with scores derived from a
// hash of the tensor contents. Identical inputs always yield identical
// distributions.
type Predictor struct{}

// New creates a mock predictor.
func New() *Predictor {
	return &Predictor{}
}

// Predict returns a pseudo-random but deterministic score vector that
// sums to 1.
func (p *Predictor) Predict(ctx context.Context, tensor vision.Tensor) ([]float32, error) {
	h := sha256.New()
	buf := make([]byte, 4)
	for _, v := range tensor.Data {
		binary.LittleEndian.PutUint32(buf, uint32(int32(v*1000)))
		_, _ = h.Write(buf)
	}
	sum := h.Sum(nil)

	scores := make([]float32, len(domain.Emotions))
	var total float32
	for i := range scores {
		scores[i] = float32(sum[i%len(sum)]) + 1
		total += scores[i]
	}
	for i := range scores {
		scores[i] /= total
	}
	return scores, nil
}

// Ready always succeeds.
func (p *Predictor) Ready(ctx context.Context) error {
	return nil
}
