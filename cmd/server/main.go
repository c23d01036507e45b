package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/pkg/config"
	"movie-dialogue-api/backend/pkg/di"
	"movie-dialogue-api/backend/pkg/logger"
	"movie-dialogue-api/backend/pkg/router"
	"movie-dialogue-api/backend/pkg/secrets"
)

func main() {
	// Load configuration (.env first, then the process environment)
	cfg := config.New()

	log := logger.New(logger.ConfigFor(cfg.Logging.Level, cfg.Logging.Format))
	logger.SetGlobal(log)

	log.Info("Starting application", "env", cfg.Server.Env, "version", os.Getenv("APP_VERSION"))

	// Credentials from Vault override the environment when enabled
	if cfg.Vault.Enabled {
		manager, err := secrets.New(cfg, log)
		if err != nil {
			log.LogError(err, "Failed to initialize secrets manager")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = secrets.Apply(ctx, cfg, manager)
		cancel()
		if err != nil {
			log.LogError(err, "Failed to load secrets")
			os.Exit(1)
		}
		log.Info("Secrets loaded from Vault", "path", cfg.Vault.SecretsPath)
	}

	db, err := config.NewDB(cfg)
	if err != nil {
		log.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.LogError(err, "Failed to migrate database")
		os.Exit(1)
	}

	// Speeds up the per-conversation line lookups
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_lines_conversation_sort ON lines(conversation_id, line_sort)").Error; err != nil {
		log.LogError(err, "Failed to create line index", "index", "idx_lines_conversation_sort")
	}

	container, err := di.New(db, cfg, log)
	if err != nil {
		log.LogError(err, "Failed to initialize dependency container")
		os.Exit(1)
	}

	r := router.New(container)
	r.SetupRoutes()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	container.Health.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
	}

	// Start the server in a goroutine
	go func() {
		log.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.LogError(err, "Server failed to start")
			os.Exit(1)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.LogError(err, "Server forced to shutdown")
	}
	if err := container.Close(shutdownCtx); err != nil {
		log.LogError(err, "Failed to release resources")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("Server exited gracefully")
}
