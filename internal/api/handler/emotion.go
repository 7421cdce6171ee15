package handler

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/moodflix/moodflix/internal/domain"
)

const (
	maxImageSize = 10 * 1024 * 1024 // 10MB
)

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// EmotionAnalyzer is the pipeline the handler delegates to.
type EmotionAnalyzer interface {
	DetectEmotion(ctx context.Context, encoded string) (*domain.Analysis, error)
	DetectEmotionBytes(ctx context.Context, raw []byte) (*domain.Analysis, error)
}

// EmotionHandler handles emotion inference requests.
type EmotionHandler struct {
	service EmotionAnalyzer
	logger  *slog.Logger
}

// NewEmotionHandler creates a new EmotionHandler instance.
func NewEmotionHandler(service EmotionAnalyzer, logger *slog.Logger) *EmotionHandler {
	return &EmotionHandler{
		service: service,
		logger:  logger,
	}
}

// DetectEmotionRequest is the JSON body for the base64 endpoint.
type DetectEmotionRequest struct {
	Image string `json:"image"`
}

// DetectEmotionResponse is the inference result payload.
type DetectEmotionResponse struct {
	AnalysisID      string             `json:"analysis_id"`
	DominantEmotion string             `json:"dominantEmotion"`
	Emotions        map[string]float64 `json:"emotions"`
	FaceDetected    bool               `json:"face_detected"`
}

// DetectEmotion POST /api/detect-emotion - analyze a base64 encoded image
func (h *EmotionHandler) DetectEmotion(c *fiber.Ctx) error {
	var req DetectEmotionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrNoInput.WithError(err)
	}

	if strings.TrimSpace(req.Image) == "" {
		return domain.ErrNoInput
	}

	analysis, err := h.service.DetectEmotion(c.Context(), req.Image)
	if err != nil {
		return err
	}

	return c.JSON(toDetectResponse(analysis))
}

// AnalyzeImage POST /api/analyze-image - analyze an uploaded image file
func (h *EmotionHandler) AnalyzeImage(c *fiber.Ctx) error {
	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return err
	}

	analysis, err := h.service.DetectEmotionBytes(c.Context(), imageBytes)
	if err != nil {
		return err
	}

	return c.JSON(toDetectResponse(analysis))
}

func toDetectResponse(analysis *domain.Analysis) DetectEmotionResponse {
	return DetectEmotionResponse{
		AnalysisID:      analysis.ID,
		DominantEmotion: analysis.DominantEmotion,
		Emotions:        analysis.Emotions.ByLabel(),
		FaceDetected:    analysis.FaceDetected,
	}
}

// extractAndValidateImage extracts the uploaded file from the form.
func extractAndValidateImage(c *fiber.Ctx) ([]byte, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, domain.ErrNoInput.WithError(err)
	}

	if file.Size == 0 || file.Size > maxImageSize {
		return nil, domain.ErrDecode
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !validImageTypes[contentType] {
		return nil, domain.ErrDecode
	}

	f, err := file.Open()
	if err != nil {
		return nil, domain.ErrDecode.WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	imageBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.ErrDecode.WithError(err)
	}

	return imageBytes, nil
}
