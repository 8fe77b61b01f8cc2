// Package main applies the database schema. Safe to run on every deploy;
// all statements are idempotent.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/config"
	"github.com/crash-ph/crash-server/internal/database"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		sugar.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatalf("Migration failed: %v", err)
	}

	sugar.Info("Schema applied")
}
