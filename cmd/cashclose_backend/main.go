package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/cashclose_app/internal/adapters/amqp"
	"github.com/SscSPs/cashclose_app/internal/adapters/gemini"
	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	"github.com/SscSPs/cashclose_app/internal/core/services"
	"github.com/SscSPs/cashclose_app/internal/handlers"
	"github.com/SscSPs/cashclose_app/internal/middleware"
	"github.com/SscSPs/cashclose_app/internal/platform/config"
	"github.com/SscSPs/cashclose_app/internal/repositories/factory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title CashClose Pro API
// @version 1.0
// @description Daily cash-closing records, period summaries and closing analysis.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	repos, err := factory.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := repos.Store.Close(); cerr != nil {
			logger.Error("Error closing record store", slog.String("error", cerr.Error()))
		}
	}()

	generator, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
	})
	if err != nil {
		logger.Error("Failed to initialize text generation client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var publisher clients.EventPublisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Events are optional; closings still work without them.
			logger.Warn("AMQP unavailable, closing events disabled", slog.String("error", err.Error()))
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
			logger.Info("Publishing closing events", slog.String("exchange", cfg.AMQPExchange), slog.String("queue", cfg.AMQPQueue))
		}
	}

	serviceContainer, err := services.NewServiceContainer(cfg, repos, generator, publisher)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, repos.Store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}
