package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bankcore/customer-service/internal/config"
	"github.com/bankcore/customer-service/internal/db"
	"github.com/bankcore/customer-service/internal/handler"
	"github.com/bankcore/customer-service/internal/queue"
	"github.com/bankcore/customer-service/internal/repository"
	"github.com/bankcore/customer-service/internal/service"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting customer service API")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to database
	database, err := db.New(cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	// Connect to Redis event bus
	queueClient, err := queue.NewRedisClient(queue.RedisConfig{
		URL:                 cfg.Redis.URL,
		EventsStream:        cfg.Redis.EventsStream,
		AccountEventsStream: cfg.Redis.AccountEventsStream,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer queueClient.Close()

	// Initialize repositories and services
	customerRepo := repository.NewCustomerRepository(database.DB)
	customerValidator := service.NewCustomerValidator(customerRepo, logger)
	customerSvc := service.NewCustomerService(customerRepo, customerValidator, queueClient, logger)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerSvc, logger)
	healthHandler := handler.NewHealthHandler(database.DB, queueClient, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(handler.RecoveryMiddleware(logger))
	r.Use(handler.CORSMiddleware)
	r.Use(handler.IdentityMiddleware)
	r.Use(handler.LoggingMiddleware(logger))

	// Register routes
	r.Get("/health", healthHandler.Health)

	r.Route("/api/customers", func(r chi.Router) {
		r.Post("/", customerHandler.Create)
		r.Get("/", customerHandler.List)
		r.Get("/{id}", customerHandler.GetByID)
		r.Get("/document/{documentNumber}", customerHandler.GetByDocumentNumber)
		r.Put("/{id}", customerHandler.Update)
		r.Delete("/{id}", customerHandler.Delete)
		r.Put("/upgrade/{id}", customerHandler.Upgrade)
	})

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
