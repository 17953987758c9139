package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"venuehub/internal/adapters/email"
	"venuehub/internal/domain"
)

// StartDecisionConsumer consumes booking.decision messages and emails the
// requester through the mailer. It runs a reconnect loop with exponential
// backoff until ctx is cancelled; processing errors are logged and the
// message is rejected without requeue so a poison message cannot wedge the
// queue.
func StartDecisionConsumer(ctx context.Context, url string, mailer domain.Mailer, logger *slog.Logger) {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, err := amqp.Dial(url)
		if err != nil {
			logger.Warn("decision-consumer: dial failed", "err", err, "retry_in", backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(ctx, conn, mailer, logger); err != nil {
			logger.Warn("decision-consumer: consume loop ended", "err", err)
		}
		_ = conn.Close()
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, mailer domain.Mailer, logger *slog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(decisionQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(decisionQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := handleDecision(d.Body, mailer); err != nil {
				logger.Error("decision-consumer: handle message failed", "err", err)
				_ = d.Reject(false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDecision(body []byte, mailer domain.Mailer) error {
	var event domain.DecisionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal decision event: %w", err)
	}
	if event.RequesterEmail == "" {
		return fmt.Errorf("decision event %s has no requester email", event.ID)
	}
	subject, html, text, err := email.RenderDecision(event)
	if err != nil {
		return fmt.Errorf("render decision email: %w", err)
	}
	if err := mailer.Send(event.RequesterEmail, subject, html, text); err != nil {
		return fmt.Errorf("send decision email: %w", err)
	}
	return nil
}
