package models

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle event types
const (
	EventCustomerCreated = "CUSTOMER_CREATED"
	EventCustomerUpdated = "CUSTOMER_UPDATED"
	EventCustomerDeleted = "CUSTOMER_DELETED"
)

// LifecycleEvent is the envelope published to the customer-events stream after
// every successful mutation. It is constructed fresh per mutation and never
// mutated afterwards.
type LifecycleEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	EntityType string    `json:"entity_type"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    *Customer `json:"payload"`
}

// NewLifecycleEvent creates an event carrying a snapshot of the customer after the mutation.
func NewLifecycleEvent(eventType string, payload *Customer) *LifecycleEvent {
	return &LifecycleEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		EntityType: "Customer",
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}
