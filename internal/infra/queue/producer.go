package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Outcome values of a ticket submission attempt.
const (
	OutcomeCreated       = "created"
	OutcomeFallbackEmail = "fallback_email"
	OutcomeLost          = "lost" // ticket failed and the fallback mail failed too
)

// TicketOutcomeEvent tells downstream consumers how a registration ticket
// ended up. Publishing is best effort; the pipeline never waits on it.
type TicketOutcomeEvent struct {
	AltaID         string    `json:"alta_id"`
	Outcome        string    `json:"outcome"`
	RequesterEmail string    `json:"requester_email"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Producer struct {
	ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{ch: ch}
}

func (p *Producer) PublishTicketOutcome(ctx context.Context, ev TicketOutcomeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("error al serializar el evento: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("fallo al publicar en RabbitMQ: %w", err)
	}

	return nil
}
