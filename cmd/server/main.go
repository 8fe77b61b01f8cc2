// Package main is the entry point for the incident reporting backend.
// It provides a REST API for citizen incident reports: submission with
// automatic nearest-office assignment, police triage, report-scoped chat
// and media, patrol checkpoints, a routing helper and aggregate analytics.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/crash-ph/crash-server/internal/config"
	"github.com/crash-ph/crash-server/internal/database"
	"github.com/crash-ph/crash-server/internal/geocode"
	"github.com/crash-ph/crash-server/internal/handlers"
	"github.com/crash-ph/crash-server/internal/middleware"
	"github.com/crash-ph/crash-server/internal/objectstore"
	"github.com/crash-ph/crash-server/internal/services"
	"github.com/crash-ph/crash-server/internal/store"
	"github.com/crash-ph/crash-server/internal/store/memory"
	"github.com/crash-ph/crash-server/internal/store/postgres"
)

const version = "1.0.0"

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	sugar.Infow("Starting incident server",
		"port", cfg.Port,
		"env", cfg.Environment,
	)

	ctx := context.Background()

	// Stores: postgres when a database is configured, in-memory otherwise
	// (development only).
	var (
		db          *pgxpool.Pool
		adminStore  store.AdminStore
		citizens    store.CitizenStore
		offices     store.OfficeStore
		reports     store.ReportStore
		messages    store.MessageStore
		checkpoints store.CheckpointStore
		mediaStore  store.MediaStore
	)
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			sugar.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		db = pool

		pg := postgres.New(pool)
		adminStore, citizens, offices = pg, pg, pg
		reports, messages, checkpoints, mediaStore = pg, pg, pg, pg
	} else {
		sugar.Warn("DATABASE_URL not set, using in-memory store")
		mem := memory.New()
		adminStore, citizens, offices = mem, mem, mem
		reports, messages, checkpoints, mediaStore = mem, mem, mem, mem
	}

	// Redis cache for analytics; the server runs without it.
	var cache *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalf("Invalid REDIS_URL: %v", err)
		}
		cache = redis.NewClient(opts)
		if err := cache.Ping(ctx).Err(); err != nil {
			sugar.Warnw("Redis unreachable, analytics caching disabled", "error", err)
			cache = nil
		}
	}

	// Object storage for report media.
	var objects objectstore.ObjectStore
	if cfg.MediaBucket != "" {
		gcs, err := objectstore.NewGCS(ctx, cfg.MediaBucket)
		if err != nil {
			sugar.Fatalf("Failed to open media bucket: %v", err)
		}
		defer gcs.Close()
		objects = gcs
	} else {
		sugar.Warn("MEDIA_BUCKET not set, storing media in memory")
		objects = objectstore.NewMemory()
	}

	// Reverse geocoding is optional; without a key reports keep placeholder
	// locations.
	var geocoder geocode.Geocoder
	if cfg.GoogleMapsAPIKey != "" {
		g, err := geocode.NewGoogle(cfg.GoogleMapsAPIKey)
		if err != nil {
			sugar.Fatalf("Failed to create geocoder: %v", err)
		}
		geocoder = g
	}

	// Initialize services
	authSvc := services.NewAuthService(adminStore, offices, cfg.JWTSecret, cfg.SessionTTL, sugar)
	officeSvc := services.NewOfficeService(offices, adminStore, sugar)
	citizenSvc := services.NewCitizenService(citizens, sugar)
	reportSvc := services.NewReportService(reports, offices, citizens, geocoder, sugar)
	messageSvc := services.NewMessageService(messages, reports, sugar)
	mediaSvc := services.NewMediaService(mediaStore, reports, objects, sugar)
	checkpointSvc := services.NewCheckpointService(checkpoints, offices, sugar)
	analyticsSvc := services.NewAnalyticsService(reports, cache, cfg.AnalyticsCacheTTL, sugar)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, sugar)
	officeHandler := handlers.NewOfficeHandler(officeSvc, sugar)
	citizenHandler := handlers.NewCitizenHandler(citizenSvc, sugar)
	reportHandler := handlers.NewReportHandler(reportSvc, messageSvc, sugar)
	mediaHandler := handlers.NewMediaHandler(mediaSvc, sugar)
	checkpointHandler := handlers.NewCheckpointHandler(checkpointSvc, sugar)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc, sugar)
	dashboardHandler := handlers.NewDashboardHandler(reportSvc, officeSvc, checkpointSvc, sugar)
	healthHandler := handlers.NewHealthHandler(db, version, sugar)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", healthHandler.Check)
		r.Get("/health/ready", healthHandler.Ready)

		// Authentication
		r.Post("/auth/login", authHandler.Login)

		// Police office accounts
		r.Route("/police-offices", func(r chi.Router) {
			r.Post("/", officeHandler.Create)
			r.Get("/", officeHandler.List)
			r.Get("/{id}", officeHandler.Get)
			r.Put("/{id}", officeHandler.Update)
			r.Patch("/{id}", officeHandler.Update)
			r.Delete("/{id}", officeHandler.Delete)
		})

		// Citizen accounts
		r.Route("/citizens", func(r chi.Router) {
			r.Post("/", citizenHandler.Register)
			r.Get("/{id}", citizenHandler.Get)
			r.Delete("/{id}", citizenHandler.Delete)
		})

		// Incident reports, report-scoped chat and routing
		r.Route("/reports", func(r chi.Router) {
			r.Post("/", reportHandler.Submit)
			r.Get("/", reportHandler.ListActive)
			r.Get("/resolved", analyticsHandler.ResolvedCases)
			r.Get("/{id}", reportHandler.Get)
			r.Put("/{id}", reportHandler.UpdateStatus)
			r.Patch("/{id}", reportHandler.UpdateStatus)
			r.Delete("/{id}", reportHandler.Delete)
			r.Get("/{id}/route", reportHandler.Route)
			r.Post("/{id}/messages", reportHandler.PostMessage)
			r.Get("/{id}/messages", reportHandler.ListMessages)
		})

		// Media attachments
		r.Route("/media", func(r chi.Router) {
			r.Post("/", mediaHandler.Upload)
			r.Get("/", mediaHandler.List)
		})

		// Patrol checkpoints
		r.Route("/checkpoints", func(r chi.Router) {
			r.Post("/", checkpointHandler.Create)
			r.Get("/", checkpointHandler.List)
			r.Get("/active", checkpointHandler.ListActive)
			r.Get("/{id}", checkpointHandler.Get)
			r.Put("/{id}", checkpointHandler.Update)
			r.Patch("/{id}", checkpointHandler.Update)
			r.Delete("/{id}", checkpointHandler.Delete)
		})

		// Analytics (dashboard only)
		r.Route("/analytics", func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWTSecret))
			r.Get("/summary/overview", analyticsHandler.Overview)
			r.Get("/hotspots/locations", analyticsHandler.Locations)
			r.Get("/hotspots/categories", analyticsHandler.Categories)
		})

		// Admin dashboard map
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWTSecret))
			r.Get("/map", dashboardHandler.Map)
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sugar.Infof("Server listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	sugar.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Fatalf("Forced shutdown: %v", err)
	}

	sugar.Info("Server stopped")
}
