package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/moodflix/moodflix/internal/api/docs"
	"github.com/moodflix/moodflix/internal/api/handler"
	"github.com/moodflix/moodflix/internal/api/middleware"
	"github.com/moodflix/moodflix/internal/catalog"
	"github.com/moodflix/moodflix/internal/recommend"
	"github.com/moodflix/moodflix/internal/service"
)

type Dependencies struct {
	EmotionService *service.EmotionService
	Engine         *recommend.Engine
	Catalog        *catalog.Service
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Moodflix API",
		BodyLimit:    12 * 1024 * 1024,
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	api := r.app.Group("/api")

	// Health check (triggers lazy model/catalog loads)
	healthHandler := handler.NewHealthHandler(r.deps.EmotionService, r.deps.Catalog)
	api.Get("/health", healthHandler.Health)

	// Emotion inference
	emotionHandler := handler.NewEmotionHandler(r.deps.EmotionService, r.logger)
	api.Post("/detect-emotion", emotionHandler.DetectEmotion)
	api.Post("/analyze-image", emotionHandler.AnalyzeImage)

	// Recommendations
	recommendHandler := handler.NewRecommendHandler(r.deps.Engine, r.logger)
	api.Get("/recommend-movies/:emotion", recommendHandler.RecommendMovies)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
