package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.crm"
	SyncQueue    = "q.sheet-syncs"
	SyncDLQ      = "q.sheet-syncs.dlq"
	DLXName      = "ex.crm.dlx"
	SyncKey      = "k.sheet-sync"

	ReportQueue = "q.sync-reports"
	ReportKey   = "k.sync-report"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	if _, err = ch.QueueDeclare(SyncDLQ, true, false, false, false, nil); err != nil {
		return err
	}

	if err = ch.QueueBind(SyncDLQ, SyncKey, DLXName, false, nil); err != nil {
		return err
	}

	// Rejected sync jobs land on the DLQ instead of looping forever.
	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": SyncKey,
	}

	if err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	if _, err = ch.QueueDeclare(SyncQueue, true, false, false, false, args); err != nil {
		return err
	}

	if err = ch.QueueBind(SyncQueue, SyncKey, ExchangeName, false, nil); err != nil {
		return err
	}

	if _, err = ch.QueueDeclare(ReportQueue, true, false, false, false, nil); err != nil {
		return err
	}

	return ch.QueueBind(ReportQueue, ReportKey, ExchangeName, false, nil)
}
