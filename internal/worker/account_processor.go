package worker

import (
	"context"
	"log/slog"
)

// AccountEventProcessor handles inbound account events. Processing is a stub
// for now: events are logged and discarded.
type AccountEventProcessor struct {
	logger *slog.Logger
}

// NewAccountEventProcessor creates a new account event processor
func NewAccountEventProcessor(logger *slog.Logger) *AccountEventProcessor {
	return &AccountEventProcessor{logger: logger}
}

// Handle implements queue.AccountEventHandler
func (p *AccountEventProcessor) Handle(ctx context.Context, key, payload string) error {
	p.logger.Info("account event received",
		slog.String("key", key),
		slog.Int("payload_size", len(payload)),
	)

	// TODO: react to account lifecycle changes once the account service
	// publishes a stable event contract.
	return nil
}
