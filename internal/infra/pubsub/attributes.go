package pubsub

import "bartile/internal/domain/service"

// eventAttributes are attached to every transport message for filtering and tracing.
func eventAttributes(event *service.QuoteEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"quote_id":   event.Quote.QuoteID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
