// Package amqpadapter publishes send lifecycle events to a RabbitMQ exchange.
package amqpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

const routingKeyPrefix = "send."

// Publisher sends each event as a persistent JSON message routed by
// send.<type>. Failures are logged and dropped.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

var _ port.EventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares a durable topic exchange.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev domain.SendEvent) {
	if err := p.publish(ctx, ev); err != nil {
		p.logger.Warn("publish send event",
			slog.String("type", string(ev.Type)),
			slog.String("record_id", ev.SendRecordID),
			slog.Any("error", err),
		)
	}
}

func (p *Publisher) publish(ctx context.Context, ev domain.SendEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := buildPublishing(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Publish(p.exchange, routingKey(ev.Type), false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func routingKey(t domain.SendEventType) string {
	return routingKeyPrefix + string(t)
}

func buildPublishing(ev domain.SendEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		MessageId:    ev.SendRecordID,
		Type:         string(ev.Type),
		Body:         body,
	}, nil
}
