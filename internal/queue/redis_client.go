package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bankcore/customer-service/internal/models"
)

// redisClient implements Client using Redis streams
type redisClient struct {
	client              *redis.Client
	eventsStream        string
	accountEventsStream string
	logger              *slog.Logger
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL                 string
	EventsStream        string
	AccountEventsStream string
}

// NewRedisClient creates a new Redis event bus client
func NewRedisClient(cfg RedisConfig, logger *slog.Logger) (Client, error) {
	// Parse Redis URL
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Create Redis client
	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		slog.String("addr", opts.Addr),
		slog.String("events_stream", cfg.EventsStream),
	)

	return &redisClient{
		client:              client,
		eventsStream:        cfg.EventsStream,
		accountEventsStream: cfg.AccountEventsStream,
		logger:              logger,
	}, nil
}

// Publish sends a lifecycle event to the customer-events stream
func (c *redisClient) Publish(ctx context.Context, key string, event *models.LifecycleEvent) error {
	// Serialize event to JSON
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.eventsStream,
		Values: map[string]interface{}{
			"key":   key,
			"event": string(data),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	c.logger.Debug("event published",
		slog.String("stream", c.eventsStream),
		slog.String("key", key),
		slog.String("event_type", event.EventType),
	)

	return nil
}

// Consume reads inbound account events from the account-events stream and
// passes them to the handler until the context is cancelled. Events arriving
// before the consumer started are not replayed.
func (c *redisClient) Consume(ctx context.Context, handler AccountEventHandler) error {
	c.logger.Info("starting account event consumer",
		slog.String("stream", c.accountEventsStream),
	)

	lastID := "$"

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopped by context")
			return ctx.Err()

		default:
			streams, err := c.client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{c.accountEventsStream, lastID},
				Count:   10,
				Block:   1 * time.Second,
			}).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					// Timeout, no events available - continue
					continue
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					c.logger.Info("consumer stopped by context")
					return err
				}
				c.logger.Error("failed to read from stream", slog.String("error", err.Error()))
				// Sleep briefly to avoid tight loop on persistent errors
				time.Sleep(1 * time.Second)
				continue
			}

			for _, stream := range streams {
				for _, msg := range stream.Messages {
					lastID = msg.ID

					key, _ := msg.Values["key"].(string)
					payload, _ := msg.Values["event"].(string)

					if err := handler(ctx, key, payload); err != nil {
						c.logger.Error("handler failed to process account event",
							slog.String("message_id", msg.ID),
							slog.String("error", err.Error()),
						)
					}
				}
			}
		}
	}
}

// Close closes the Redis connection
func (c *redisClient) Close() error {
	c.logger.Info("closing Redis connection")
	return c.client.Close()
}

// Health checks if Redis is healthy
func (c *redisClient) Health(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis health check failed: %w", err)
	}
	return nil
}
