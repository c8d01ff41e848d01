package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bankcore/customer-service/internal/config"
	"github.com/bankcore/customer-service/internal/queue"
	"github.com/bankcore/customer-service/internal/worker"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting account event worker")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	// Initialize account event processor
	processor := worker.NewAccountEventProcessor(logger)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start consuming account events
	consumerErrors := make(chan error, 1)
	go func() {
		consumerErrors <- queueClient.Consume(ctx, processor.Handle)
	}()

	// Wait for interrupt signal or consumer error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-consumerErrors:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("consumer error", slog.String("error", err.Error()))
			os.Exit(1)
		}

	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
		cancel()
		<-consumerErrors
	}

	logger.Info("worker stopped gracefully")
}
