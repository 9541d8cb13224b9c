package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/solar-crm/internal/usecase"
)

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

// PublishSyncRequest enqueues an ingestion job for the worker. Used by
// the async sync endpoint and by scheduled re-syncs.
func (p *Producer) PublishSyncRequest(ctx context.Context, input usecase.SyncInput) error {
	return p.publish(ctx, SyncKey, input)
}

// PublishSyncCompleted pushes a finished report onto the bus for
// dashboard and audit consumers.
func (p *Producer) PublishSyncCompleted(ctx context.Context, report usecase.SyncReport) error {
	return p.publish(ctx, ReportKey, report)
}

func (p *Producer) publish(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to RabbitMQ: %w", err)
	}

	return nil
}
