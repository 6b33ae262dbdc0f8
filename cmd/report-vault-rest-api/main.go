// cmd/report-vault-rest-api/main.go
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

	v1 "github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/api/rest/v1"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/app"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/infrastructure/cryptography"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/infrastructure/persistence"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

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
	// an unset CONFIG_PATH means environment variables only
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.closeStore(); err != nil {
			log.Error("Failed to close report store", "error", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	reportStore reports.ReportStore
	closeStore  func() error
}

// initializeDependencies loads the key, opens the record store and builds the report store
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	key, err := cryptography.LoadKey(cfg.Encryption)
	if err != nil {
		return nil, fmt.Errorf("failed to load encryption key: %w", err)
	}
	cipher, err := cryptography.NewAESGCMCipher(key, log)
	cryptography.Zero(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	repo, closeStore, err := persistence.NewReportRepository(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open report repository: %w", err)
	}

	policy := reports.NewUploadPolicy(cfg.Reports.MaxPayloadSize, cfg.Reports.AllowedContentTypes, cfg.Reports.AllowedExtensions)

	reportStore, err := app.NewReportStore(cipher, repo, policy, log)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("failed to create report store: %w", err)
	}

	log.Info("Report store initialized", "database", cfg.Database.Type, "max_payload_size", cfg.Reports.MaxPayloadSize)
	return &appDependencies{
		reportStore: reportStore,
		closeStore:  closeStore,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.Reports.MaxPayloadSize

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.reportStore, cfg.Reports, cfg.Auth, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
