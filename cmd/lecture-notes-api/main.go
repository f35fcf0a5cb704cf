// cmd/lecture-notes-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "lecture_note_service/internal/api/rest/v1"
	"lecture_note_service/internal/app"
	"lecture_note_service/internal/domain/lectures"
	"lecture_note_service/internal/domain/summaries"
	"lecture_note_service/internal/infrastructure/persistence"
	"lecture_note_service/internal/infrastructure/persistence/models"
	"lecture_note_service/internal/infrastructure/workspace"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds the services the editor API exposes
type appServices struct {
	catalog lectures.CatalogService
	render  lectures.RenderService
	editor  summaries.EditorService
}

// initializeServices sets up the catalog, render and editor services
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.LectureModel{}, &models.ArtifactModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	lectureRepo, err := persistence.NewGormLectureRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lecture repository: %w", err)
	}

	artifactRepo, err := persistence.NewGormArtifactRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact repository: %w", err)
	}

	// Initialize workspace access
	scanner, err := workspace.NewFolderScanner(cfg.Pipeline.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder scanner: %w", err)
	}

	store, err := workspace.NewFileStore(cfg.Pipeline.OutputDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	// Initialize services
	catalogService, err := app.NewCatalogService(scanner, lectureRepo, artifactRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	renderService, err := app.NewRenderService(store, lectureRepo, artifactRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create render service: %w", err)
	}

	editorService, err := app.NewEditorService(store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create editor service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		catalog: catalogService,
		render:  renderService,
		editor:  editorService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.catalog, services.render, services.editor)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
