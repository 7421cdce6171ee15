package classifier

import (
	"fmt"

	"github.com/moodflix/moodflix/internal/classifier/httpmodel"
	"github.com/moodflix/moodflix/internal/classifier/mock"
	"github.com/moodflix/moodflix/internal/config"
)

// ProviderType defines supported classifier providers.
type ProviderType string

const (
	// ProviderTypeHTTP serves predictions from an external model server.
	ProviderTypeHTTP ProviderType = "http"
	// ProviderTypeMock serves deterministic predictions for dev/test.
	ProviderTypeMock ProviderType = "mock"
)

// NewPredictor creates a Predictor instance based on configuration.
//
// Environment variables:
//   - CLASSIFIER_PROVIDER: "http" or "mock" (default: "http")
//   - MODEL_SERVER_URL: model server base URL (default: "http://localhost:8501")
func NewPredictor(cfg *config.Config) (Predictor, error) {
	switch ProviderType(cfg.ClassifierProvider) {
	case ProviderTypeHTTP, "":
		clientConfig := httpmodel.DefaultConfig()
		if cfg.ModelServerURL != "" {
			clientConfig.BaseURL = cfg.ModelServerURL
		}
		return httpmodel.NewClient(clientConfig), nil

	case ProviderTypeMock:
		return mock.New(), nil

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: %s, %s)",
			cfg.ClassifierProvider, ProviderTypeHTTP, ProviderTypeMock)
	}
}
