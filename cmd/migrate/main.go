package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/moodflix/moodflix/internal/config"
	"github.com/moodflix/moodflix/internal/database"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	action := flag.String("action", "up", "Migration action: up, down, version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required to run migrations")
	}

	// golang-migrate works over database/sql, so connect through the pgx
	// stdlib driver rather than the pool the API uses.
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	migrator, err := database.NewMigrator(db, "moodflix")
	if err != nil {
		return err
	}
	defer func() {
		_ = migrator.Close()
	}()

	switch *action {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
		fmt.Println("migrations applied")

	case "down":
		if err := migrator.Down(); err != nil {
			return err
		}
		fmt.Println("rolled back one migration")

	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)

	default:
		return fmt.Errorf("unknown action: %s (supported: up, down, version)", *action)
	}

	return nil
}
