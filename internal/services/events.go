package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Event names published for transaction changes.
const (
	EventTransactionCreated = "transaction.created"
	EventTransactionUpdated = "transaction.updated"
	EventTransactionDeleted = "transaction.deleted"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TransactionEvent is the message body of a transaction change.
type TransactionEvent struct {
	Event         string                 `json:"event"`
	TransactionID string                 `json:"transaction_id"`
	UserID        string                 `json:"user_id"`
	Type          models.TransactionType `json:"type,omitempty"`
	Amount        string                 `json:"amount,omitempty"`
	Category      *string                `json:"category,omitempty"`
	OccurredAt    int64                  `json:"occurred_at"`
}

// EventPublisher sends transaction events to Kafka. Publishing never fails the caller.
type EventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer, now: time.Now}
}

// Publish writes one event keyed by transaction id.
func (p *EventPublisher) Publish(ctx context.Context, event string, tx models.Transaction) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("kafka writer not configured, skipping publishing", "event", event, "transaction_id", tx.ID)
		return
	}

	body := TransactionEvent{
		Event:         event,
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Type:          tx.Type,
		Category:      tx.Category,
		OccurredAt:    p.now().Unix(),
	}
	if event != EventTransactionDeleted {
		body.Amount = tx.Amount.String()
	}

	data, err := json.Marshal(body)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event", event, "transaction_id", tx.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(tx.ID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event", event, "transaction_id", tx.ID, "error", err)
		return
	}
	logger.Log.Infow("event published", "event", event, "transaction_id", tx.ID)
}
