package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodflix/moodflix/internal/classifier/httpmodel"
	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/vision"
)

// Predictor is the opaque model capability: a tensor in, one raw score
// per emotion label out. Implementations must preserve the label order
// of domain.Emotions in the returned vector.
type Predictor interface {
	// Predict runs one inference and returns the raw score vector.
	Predict(ctx context.Context, tensor vision.Tensor) ([]float32, error)

	// Ready reports whether the model can serve predictions.
	Ready(ctx context.Context) error
}

// Adapter turns raw predictor output into a labeled distribution.
type Adapter struct {
	predictor Predictor
}

// NewAdapter wraps a predictor.
func NewAdapter(predictor Predictor) *Adapter {
	return &Adapter{predictor: predictor}
}

// Classify runs the predictor and zips its output with the fixed label
// list. A vector length that disagrees with the label set is a hard
// inference error rather than a silently shifted label.
func (a *Adapter) Classify(ctx context.Context, tensor vision.Tensor) (domain.Distribution, error) {
	scores, err := a.predictor.Predict(ctx, tensor)
	if err != nil {
		if errors.Is(err, httpmodel.ErrModelServerUnavailable) {
			return domain.Distribution{}, domain.ErrModelUnavailable.WithError(err)
		}
		return domain.Distribution{}, domain.ErrInference.WithError(err)
	}

	if len(scores) != len(domain.Emotions) {
		return domain.Distribution{}, domain.ErrInference.WithError(
			fmt.Errorf("model returned %d scores, expected %d", len(scores), len(domain.Emotions)))
	}

	dist := domain.Distribution{Scores: make([]float64, len(scores))}
	for i, s := range scores {
		dist.Scores[i] = float64(s)
	}
	return dist, nil
}

// Ready reports model availability.
func (a *Adapter) Ready(ctx context.Context) error {
	return a.predictor.Ready(ctx)
}
