package service

import (
	"context"

	"bartile/internal/domain/entity"
)

// QuoteSubmittedTopic is the event name used for routing and the local HTTP transport path.
const QuoteSubmittedTopic = "quote.submitted"

// QuoteEvent wraps a quote event for publishing.
type QuoteEvent struct {
	RequestID string                     `json:"request_id,omitempty"` // For distributed tracing
	Type      string                     `json:"type"`
	Quote     entity.QuoteSubmittedEvent `json:"quote"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQuoteEvent publishes a quote lifecycle event for downstream processing
	PublishQuoteEvent(ctx context.Context, event *QuoteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
