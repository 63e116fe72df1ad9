package events

import (
	"context"
	"encoding/json"
	"time"

	"crm-distribution-backend/internal/database/models"
	"crm-distribution-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// Routing keys for contact registration outcomes
const (
	KeyContactAssigned = "contact.assigned"
	KeyContactQueued   = "contact.queued"
)

// ContactRegisteredEvent is the payload published for every registered contact
type ContactRegisteredEvent struct {
	ContactID  uuid.UUID  `json:"contact_id"`
	LeadID     uuid.UUID  `json:"lead_id"`
	SourceID   uuid.UUID  `json:"source_id"`
	OperatorID *uuid.UUID `json:"operator_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Publisher publishes contact events to a RabbitMQ topic exchange
type Publisher struct {
	conn     *amqp091.Connection
	exchange string
	log      *logger.Logger
}

// NewPublisher dials the broker and declares the topic exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(
		exchange, "topic", true, false, false, false, nil,
	); err != nil {
		conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:     conn,
		exchange: exchange,
		log:      logger.WithComponent("events"),
	}, nil
}

// PublishContactRegistered publishes a contact.assigned or contact.queued
// event depending on whether an operator took the contact
func (p *Publisher) PublishContactRegistered(ctx context.Context, contact *models.Contact) error {
	key := KeyContactQueued
	if contact.OperatorID != nil {
		key = KeyContactAssigned
	}

	event := ContactRegisteredEvent{
		ContactID:  contact.ID,
		LeadID:     contact.LeadID,
		SourceID:   contact.SourceID,
		OperatorID: contact.OperatorID,
		OccurredAt: contact.CreatedAt,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.PublishWithContext(
		ctx, p.exchange, key, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err == nil {
		p.log.WithFields(map[string]interface{}{
			"key":      key,
			"exchange": p.exchange,
		}).Debug("published contact event")
	}
	return err
}

// Close closes the broker connection
func (p *Publisher) Close() error {
	return p.conn.Close()
}
