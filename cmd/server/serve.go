package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"marketplace-contracts-backend/docs"
	"marketplace-contracts-backend/internal/config"
	"marketplace-contracts-backend/internal/database"
	"marketplace-contracts-backend/internal/handlers"
	"marketplace-contracts-backend/internal/middleware"
	"marketplace-contracts-backend/internal/services"
	"marketplace-contracts-backend/internal/store/memory"
	"marketplace-contracts-backend/internal/supabase"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	configureSwagger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store services.ContractStore
	var health handlers.Pinger
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction() {
			return errors.New("DATABASE_URL is required in production")
		}
		logger.Warn("DATABASE_URL not set, using in-memory contract store")
		store = memory.New()
	} else {
		migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		err = migrator.Run(ctx)
		migrator.Close()
		if err != nil {
			return err
		}

		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer dbClient.Close()
		store, health = dbClient, dbClient
	}

	// Realtime and archive storage are optional in development.
	var broadcaster services.Broadcaster
	var archiver services.Archiver
	if cfg.SupabaseURL != "" {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			return err
		}
		broadcaster = supabase.NewRealtimeClient(supabaseClient.Supabase)

		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseArchiveBucket)
		if err != nil {
			return err
		}
		archiver = storageClient
	} else {
		logger.Warn("SUPABASE_URL not set, realtime pushes and contract archives are disabled")
	}

	dispatcher := services.NewDispatcher(logger, cfg.NotifyTimeout)
	notifier := services.NewNotifier(store, broadcaster, dispatcher, logger)
	contractService := services.NewContractService(store, notifier, archiver, dispatcher, logger, cfg.ClientFeedWindow())

	router := newRouter(cfg, logger, contractService, health)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	dispatcher.Wait()
	return nil
}

func newRouter(cfg *config.Config, logger *zap.Logger, svc services.IContractService, health handlers.Pinger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler(health))

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	handlers.RegisterRoutes(api,
		handlers.NewContractsHandler(svc, logger),
		handlers.NewProviderHandler(svc, logger),
	)
	return router
}

// configureSwagger points the docs at BASE_URL.
func configureSwagger(cfg *config.Config) {
	if cfg.BaseURL == "" {
		return
	}
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return
	}
	docs.SwaggerInfo.Host = baseURL.Host
	if baseURL.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
}
