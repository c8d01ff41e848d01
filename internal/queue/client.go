package queue

import (
	"context"

	"github.com/bankcore/customer-service/internal/models"
)

// Client defines the interface for event bus operations
type Client interface {
	// Publish sends a lifecycle event to the customer-events stream, keyed by
	// customer id. Delivery is best-effort: the call reports only whether the
	// send itself succeeded.
	Publish(ctx context.Context, key string, event *models.LifecycleEvent) error

	// Consume reads inbound account events and passes them to the handler,
	// blocking until the context is cancelled.
	Consume(ctx context.Context, handler AccountEventHandler) error

	// Close closes the event bus connection
	Close() error

	// Health checks if the event bus is healthy
	Health(ctx context.Context) error
}

// AccountEventHandler is a function that processes an inbound account event
type AccountEventHandler func(ctx context.Context, key, payload string) error
