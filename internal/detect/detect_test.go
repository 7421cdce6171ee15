package detect

import (
	"context"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCascade_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facefinder")
	require.NoError(t, os.WriteFile(path, []byte("cascade-bytes"), 0o644))

	data, err := EnsureCascade(context.Background(), path, "http://unused.invalid")
	require.NoError(t, err)
	assert.Equal(t, []byte("cascade-bytes"), data)
}

func TestEnsureCascade_DownloadsWhenAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote-cascade"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "models", "facefinder")
	data, err := EnsureCascade(context.Background(), path, server.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-cascade"), data)

	// Downloaded bytes are cached next to the configured path.
	cached, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-cascade"), cached)
}

func TestEnsureCascade_DownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "facefinder")
	_, err := EnsureCascade(context.Background(), path, server.URL)
	assert.Error(t, err)
}

func TestNewDetector_InvalidCascade(t *testing.T) {
	_, err := NewDetector([]byte("not a cascade"), DefaultParams())
	assert.Error(t, err)
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 30, p.MinSize)
	assert.Equal(t, 1.1, p.ScaleFactor)
	assert.Equal(t, float32(5.0), p.QualityThreshold)
}

func TestGrayPixels(t *testing.T) {
	t.Run("contiguous raster reuses backing array", func(t *testing.T) {
		gray := image.NewGray(image.Rect(0, 0, 4, 3))
		gray.Pix[5] = 42

		pixels := grayPixels(gray)
		require.Len(t, pixels, 12)
		assert.Equal(t, uint8(42), pixels[5])
	})

	t.Run("sub-image is flattened row-major", func(t *testing.T) {
		gray := image.NewGray(image.Rect(0, 0, 10, 10))
		gray.SetGray(3, 2, color.Gray{Y: 200})
		sub := gray.SubImage(image.Rect(2, 2, 6, 6)).(*image.Gray)

		pixels := grayPixels(sub)
		require.Len(t, pixels, 16)
		// (3,2) in the parent maps to (1,0) in the 4-wide sub raster.
		assert.Equal(t, uint8(200), pixels[1])
	})
}
