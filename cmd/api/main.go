package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moodflix/moodflix/internal/api"
	"github.com/moodflix/moodflix/internal/catalog"
	"github.com/moodflix/moodflix/internal/classifier"
	"github.com/moodflix/moodflix/internal/config"
	"github.com/moodflix/moodflix/internal/database"
	"github.com/moodflix/moodflix/internal/detect"
	"github.com/moodflix/moodflix/internal/recommend"
	"github.com/moodflix/moodflix/internal/service"
	"github.com/moodflix/moodflix/internal/vision"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting Moodflix API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Emotion pipeline
	mode, err := vision.ParseMode(cfg.NormalizeMode)
	if err != nil {
		return fmt.Errorf("failed to configure normalizer: %w", err)
	}

	predictor, err := classifier.NewPredictor(cfg)
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	locator := newLocator(ctx, cfg, logger)
	emotionService := service.NewEmotionService(locator, classifier.NewAdapter(predictor), mode)

	// Catalog and recommendation engine
	catalogSource, pool, err := newCatalogSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	catalogService := catalog.NewService(catalogSource)
	engine := recommend.NewEngine(catalogService, cfg.DefaultLimit)

	// Setup router
	router := api.NewRouter(logger, &api.Dependencies{
		EmotionService: emotionService,
		Engine:         engine,
		Catalog:        catalogService,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}

// newLocator builds the face detector. A missing or unloadable cascade
// degrades to whole-frame classification instead of refusing to start.
func newLocator(ctx context.Context, cfg *config.Config, logger *slog.Logger) service.FaceLocator {
	if !cfg.DetectionEnabled {
		logger.Info("face detection disabled, classifying whole frames")
		return nil
	}

	cascade, err := detect.EnsureCascade(ctx, cfg.CascadePath, cfg.CascadeURL)
	if err != nil {
		logger.Warn("cascade unavailable, falling back to whole-frame classification",
			slog.Any("error", err))
		return nil
	}

	detector, err := detect.NewDetector(cascade, detect.DefaultParams())
	if err != nil {
		logger.Warn("cascade unpack failed, falling back to whole-frame classification",
			slog.Any("error", err))
		return nil
	}

	return detector
}

func newCatalogSource(ctx context.Context, cfg *config.Config) (catalog.Source, *pgxpool.Pool, error) {
	switch cfg.CatalogSource {
	case "csv", "":
		return catalog.NewCSVSource(cfg.CatalogPath), nil, nil

	case "postgres":
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPostgresSource(pool), pool, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog source: %s (supported: csv, postgres)", cfg.CatalogSource)
	}
}
