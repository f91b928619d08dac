package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bartile/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const natsConnectTimeout = 5 * time.Second

// natsPublisher implements EventPublisher on a core NATS connection
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNatsPublisher connects to url and publishes every event on subject
func NewNatsPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	if subject == "" {
		subject = service.QuoteSubmittedTopic
	}

	conn, err := nats.Connect(url,
		nats.Name("bartile"),
		nats.Timeout(natsConnectTimeout),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to nats at %s", url)
	}

	return newNatsPublisher(conn, subject, logger), nil
}

func newNatsPublisher(conn *nats.Conn, subject string, logger *slog.Logger) *natsPublisher {
	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// PublishQuoteEvent publishes the event and waits for the server to flush it
func (p *natsPublisher) PublishQuoteEvent(ctx context.Context, event *service.QuoteEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for k, v := range eventAttributes(event) {
		msg.Header.Set(k, v)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrap(err, "failed to publish to nats")
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.Wrap(err, "failed to flush nats connection")
	}

	p.logger.InfoContext(ctx, "[NATS] Event published",
		slog.String("subject", p.subject),
		slog.String("quote_id", event.Quote.QuoteID.String()),
	)

	return nil
}

// Close drains pending messages and closes the connection
func (p *natsPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
