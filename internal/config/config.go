package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Classifier
	ClassifierProvider string `envconfig:"CLASSIFIER_PROVIDER" default:"http"`
	ModelServerURL     string `envconfig:"MODEL_SERVER_URL" default:"http://localhost:8501"`
	NormalizeMode      string `envconfig:"NORMALIZE_MODE" default:"centered"`

	// Face detection
	DetectionEnabled bool   `envconfig:"DETECTION_ENABLED" default:"true"`
	CascadePath      string `envconfig:"CASCADE_PATH" default:"models/facefinder"`
	CascadeURL       string `envconfig:"CASCADE_URL" default:"https://raw.githubusercontent.com/esimov/pigo/master/cascade/facefinder"`

	// Catalog
	CatalogSource string `envconfig:"CATALOG_SOURCE" default:"csv"`
	CatalogPath   string `envconfig:"CATALOG_PATH" default:"data/tmdb.csv"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`

	// Recommendations
	DefaultLimit int `envconfig:"RECOMMEND_DEFAULT_LIMIT" default:"8"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.CatalogSource == "postgres" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("load config: DATABASE_URL is required when CATALOG_SOURCE=postgres")
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
