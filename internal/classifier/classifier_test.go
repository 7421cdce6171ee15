package classifier

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moodflix/moodflix/internal/classifier/httpmodel"
	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/vision"
)

type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(ctx context.Context, tensor vision.Tensor) ([]float32, error) {
	args := m.Called(ctx, tensor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockPredictor) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testTensor() vision.Tensor {
	return vision.Tensor{
		Data:     make([]float32, vision.TargetSize*vision.TargetSize),
		Batch:    1,
		Height:   vision.TargetSize,
		Width:    vision.TargetSize,
		Channels: 1,
	}
}

func TestAdapter_Classify(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockPredictor)
		wantOK     bool
		wantCode   string
	}{
		{
			name: "zips scores with labels in order",
			setupMocks: func(p *MockPredictor) {
				p.On("Predict", mock.Anything, mock.Anything).
					Return([]float32{0, 0, 0, 0.9, 0, 0, 0.1}, nil)
			},
			wantOK: true,
		},
		{
			name: "short vector is an inference error",
			setupMocks: func(p *MockPredictor) {
				p.On("Predict", mock.Anything, mock.Anything).
					Return([]float32{0.5, 0.5}, nil)
			},
			wantCode: "INFERENCE_ERROR",
		},
		{
			name: "long vector is an inference error",
			setupMocks: func(p *MockPredictor) {
				p.On("Predict", mock.Anything, mock.Anything).
					Return(make([]float32, 10), nil)
			},
			wantCode: "INFERENCE_ERROR",
		},
		{
			name: "predictor failure is an inference error",
			setupMocks: func(p *MockPredictor) {
				p.On("Predict", mock.Anything, mock.Anything).
					Return(nil, errors.New("bad weights"))
			},
			wantCode: "INFERENCE_ERROR",
		},
		{
			name: "unreachable model server is reported as unavailable",
			setupMocks: func(p *MockPredictor) {
				p.On("Predict", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: connection refused", httpmodel.ErrModelServerUnavailable))
			},
			wantCode: "MODEL_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictor := new(MockPredictor)
			tt.setupMocks(predictor)

			adapter := NewAdapter(predictor)
			dist, err := adapter.Classify(context.Background(), testTensor())

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *domain.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantCode, appErr.Code)
				return
			}

			require.NoError(t, err)
			require.True(t, tt.wantOK)
			require.Len(t, dist.Scores, len(domain.Emotions))
			assert.Equal(t, "Happy", dist.Dominant())
			assert.InDelta(t, 0.9, dist.ByLabel()["Happy"], 1e-6)
			assert.InDelta(t, 0.1, dist.ByLabel()["Neutral"], 1e-6)
			predictor.AssertExpectations(t)
		})
	}
}

func TestAdapter_Ready(t *testing.T) {
	predictor := new(MockPredictor)
	predictor.On("Ready", mock.Anything).Return(nil)

	adapter := NewAdapter(predictor)
	assert.NoError(t, adapter.Ready(context.Background()))
	predictor.AssertExpectations(t)
}
