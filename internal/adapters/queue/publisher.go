// Package queue publishes and consumes decision-made events over RabbitMQ.
// Publishing is best-effort: callers log failures and carry on, so a broker
// outage never blocks the decision itself.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"venuehub/internal/domain"
)

const decisionQueueName = "booking.decision"

type amqpPublisher struct {
	url string
}

// NewPublisher returns a DecisionPublisher that publishes to the
// booking.decision queue at the given AMQP URL. Connections are opened per
// publish; decision volume is low enough that this stays simple and robust.
func NewPublisher(url string) domain.DecisionPublisher {
	return &amqpPublisher{url: url}
}

func (p *amqpPublisher) PublishDecision(ctx context.Context, event domain.DecisionEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(decisionQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", decisionQueueName, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
