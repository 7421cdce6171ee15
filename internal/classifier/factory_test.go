package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodflix/moodflix/internal/classifier/httpmodel"
	"github.com/moodflix/moodflix/internal/classifier/mock"
	"github.com/moodflix/moodflix/internal/config"
)

func TestNewPredictor(t *testing.T) {
	t.Run("http provider", func(t *testing.T) {
		p, err := NewPredictor(&config.Config{
			ClassifierProvider: "http",
			ModelServerURL:     "http://model:8501",
		})
		require.NoError(t, err)
		assert.IsType(t, &httpmodel.Client{}, p)
	})

	t.Run("empty defaults to http", func(t *testing.T) {
		p, err := NewPredictor(&config.Config{})
		require.NoError(t, err)
		assert.IsType(t, &httpmodel.Client{}, p)
	})

	t.Run("mock provider", func(t *testing.T) {
		p, err := NewPredictor(&config.Config{ClassifierProvider: "mock"})
		require.NoError(t, err)
		assert.IsType(t, &mock.Predictor{}, p)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewPredictor(&config.Config{ClassifierProvider: "tpu"})
		assert.Error(t, err)
	})
}
