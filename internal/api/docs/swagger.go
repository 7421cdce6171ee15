package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// DetectEmotionBody is the request body for base64 emotion detection.
type DetectEmotionBody struct {
	Image string `json:"image" example:"data:image/jpeg;base64,/9j/4AAQ..."`
}

// DetectEmotionResult is the inference response.
type DetectEmotionResult struct {
	AnalysisID      string             `json:"analysis_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	DominantEmotion string             `json:"dominantEmotion" example:"Happy"`
	Emotions        map[string]float64 `json:"emotions"`
	FaceDetected    bool               `json:"face_detected" example:"true"`
}

// RecommendResult is the ranked recommendation response.
type RecommendResult struct {
	Emotion         string           `json:"emotion" example:"happy"`
	Recommendations []map[string]any `json:"recommendations"`
}

// HealthResult reports dependency health.
type HealthResult struct {
	Status      string `json:"status" example:"healthy"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	DataLoaded  bool   `json:"data_loaded" example:"true"`
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Code    string `json:"code" example:"DECODE_ERROR"`
	Message string `json:"message" example:"Invalid image format or corrupted file"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Moodflix API",
		Version:     "v1.0.0",
		Description: "Detects the dominant emotion in a face image and recommends movies suited to it",
		Host:        "localhost:3000",
		Path:        "/api",
	})

	endpoints := []*endpoint.EndPoint{
		// GET /api/health
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Service health"),
			endpoint.WithDescription("Reports whether the emotion model and the movie catalog are loaded, triggering their first load if needed"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResult{}, "200", "Health status"),
			}),
		),

		// POST /api/detect-emotion
		endpoint.New(
			endpoint.POST,
			"/detect-emotion",
			endpoint.WithTags("Emotion"),
			endpoint.WithSummary("Detect emotion from a base64 image"),
			endpoint.WithDescription("Decodes a base64 (or data-URL) encoded face image, detects the facial region and returns the dominant emotion plus the full score distribution"),
			endpoint.WithBody(DetectEmotionBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(DetectEmotionResult{}, "200", "Emotion detected"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_INPUT", Message: "No image data provided"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "DECODE_ERROR", Message: "Invalid image format or corrupted file"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INFERENCE_ERROR", Message: "Emotion prediction failed"}, "500", "Internal Server Error"),
				response.New(ErrorResponse{Code: "MODEL_UNAVAILABLE", Message: "Emotion model is not available"}, "503", "Service Unavailable"),
			}),
		),

		// POST /api/analyze-image
		endpoint.New(
			endpoint.POST,
			"/analyze-image",
			endpoint.WithTags("Emotion"),
			endpoint.WithSummary("Detect emotion from an uploaded image"),
			endpoint.WithDescription("Multipart variant of detect-emotion taking the image as a file upload"),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(DetectEmotionResult{}, "200", "Emotion detected"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_INPUT", Message: "No image data provided"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "DECODE_ERROR", Message: "Invalid image format or corrupted file"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INFERENCE_ERROR", Message: "Emotion prediction failed"}, "500", "Internal Server Error"),
			}),
		),

		// GET /api/recommend-movies/{emotion}
		endpoint.New(
			endpoint.GET,
			"/recommend-movies/{emotion}",
			endpoint.WithTags("Recommendations"),
			endpoint.WithSummary("Recommend movies for an emotion"),
			endpoint.WithDescription("Returns a ranked, bounded list of movies whose genres suit the given emotion"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("emotion", parameter.Path, parameter.WithDescription("One of: angry, disgust, fear, happy, sad, surprise, neutral (case-insensitive)")),
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Maximum number of results (default: 8)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RecommendResult{}, "200", "Ranked recommendations"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_EMOTION", Message: "Emotion is not one of the supported labels"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INVALID_LIMIT", Message: "Limit must be a positive integer"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "CATALOG_UNAVAILABLE", Message: "Movie catalog failed to load"}, "503", "Service Unavailable"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
