package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/mediahub/backend/docs"
	"github.com/mediahub/backend/internal/config"
	"github.com/mediahub/backend/internal/handlers"
	"github.com/mediahub/backend/internal/logger"
	"github.com/mediahub/backend/internal/middlewares"
	"github.com/mediahub/backend/internal/pdfutil"
	"github.com/mediahub/backend/internal/probe"
	"github.com/mediahub/backend/internal/repositories"
	"github.com/mediahub/backend/internal/repositories/memory"
	"github.com/mediahub/backend/internal/services"
	"github.com/mediahub/backend/internal/storage"
)

// @title Media Hub API
// @version 1.0
// @description Backend for uploading, browsing and streaming videos, PDFs, audio recordings and WebGL assets

// @license.name MIT

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Media Hub backend",
		zap.String("metadata_backend", cfg.MetadataBackend),
		zap.String("storage_backend", cfg.StorageBackend),
	)

	// Initialize metadata stores
	var (
		mediaRepo services.MediaFileRepository
		audioRepo services.AudioRepository
		webglRepo services.WebglRepository
	)
	switch cfg.MetadataBackend {
	case config.MetadataBackendMySQL:
		db, err := connectDB(cfg.DSN())
		if err != nil {
			logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		mediaRepo = repositories.NewMediaFileRepository(db)
		audioRepo = repositories.NewAudioRepository(db)
		webglRepo = repositories.NewWebglRepository(db)
	default:
		mediaRepo = memory.NewMediaFileStore()
		audioRepo = memory.NewAudioStore()
		webglRepo = memory.NewWebglStore()
	}

	// Initialize blob storage
	var blobs services.BlobStorage
	switch cfg.StorageBackend {
	case config.StorageBackendS3:
		blobs, err = storage.NewS3Storage(storage.S3Config{
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			AccessSecret: cfg.S3.AccessSecret,
			Region:       cfg.S3.Region,
			Bucket:       cfg.S3.Bucket,
		})
		if err != nil {
			logger.Logger.Fatal("Failed to initialize s3 storage", zap.Error(err))
		}
	default:
		blobs = storage.NewLocalStorage(cfg.MediaBasePath)
	}

	// Initialize probing and PDF tooling
	prober := probe.NewProber(cfg.FFprobePath)
	pdfProcessor := pdfutil.NewProcessor()

	// Initialize services
	mediaService := services.NewMediaService(mediaRepo, blobs, prober, pdfProcessor, logger.Logger)
	audioService := services.NewAudioService(audioRepo, blobs, prober, logger.Logger)
	webglService := services.NewWebglService(webglRepo, blobs, logger.Logger)

	// Initialize handlers
	videoHandler := handlers.NewVideoHandler(mediaService, logger.Logger)
	pdfHandler := handlers.NewPDFHandler(mediaService, logger.Logger)
	audioHandler := handlers.NewAudioHandler(audioService, logger.Logger)
	webglHandler := handlers.NewWebglHandler(webglService, logger.Logger)
	base := &handlers.BaseHandler{Logger: logger.Logger}

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(cfg.MaxUploadSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Get("/health", base.Health)

	r.Route("/api", func(r chi.Router) {
		videoHandler.RegisterRoutes(r)
		pdfHandler.RegisterRoutes(r)
		audioHandler.RegisterRoutes(r)
		webglHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Minute, // uploads and long streams
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
