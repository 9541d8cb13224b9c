package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/solar-crm/internal/usecase"
)

// SheetSyncer is what the worker needs from the sync use case.
type SheetSyncer interface {
	Execute(ctx context.Context, input usecase.SyncInput) (*usecase.SyncReport, error)
}

// Worker consumes queued sync requests and runs them through the
// ingestion pipeline.
type Worker struct {
	Channel *amqp.Channel
	Syncer  SheetSyncer
}

func NewWorker(ch *amqp.Channel, syncer SheetSyncer) *Worker {
	return &Worker{Channel: ch, Syncer: syncer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var input usecase.SyncInput
			if err := json.Unmarshal(d.Body, &input); err != nil {
				log.Printf("[worker] malformed sync request: %s", err)
				// Poison message. Reject without requeue so the queue
				// keeps moving; it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] syncing %s from sheet %s (gid %s)", input.Type, input.SpreadsheetID, input.SheetID)

			report, err := w.Syncer.Execute(context.Background(), input)
			if err != nil {
				log.Printf("[worker] sync failed: %s", err)
				// Reject without requeue: a broken sheet won't get
				// better on a tight retry loop, and transient fetch
				// failures can be replayed from the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] %s", report.Message)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] worker waiting on queue '%s'", queueName)
	<-forever
}
