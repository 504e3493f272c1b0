package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type eventEnvelope struct {
	EventId    string         `json:"event_id"`
	Type       string         `json:"type"`
	PurchaseId int            `json:"purchase_id"`
	UserId     int            `json:"user_id"`
	Status     string         `json:"status"`
	Total      string         `json:"total"`
	Items      []envelopeItem `json:"items"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type envelopeItem struct {
	ProductId int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// EventPublisher writes purchase events to a topic keyed by purchase id,
// so all events of one purchase land on the same partition in commit order.
type EventPublisher struct {
	writer messageWriter
}

func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           2 * time.Second,
			MaxAttempts:            3,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.PurchaseEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to write %s event: %w", event.Type, err)
	}

	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

func encodeEvent(event domain.PurchaseEvent) (kafka.Message, error) {
	items := make([]envelopeItem, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, envelopeItem{ProductId: item.ProductId, Quantity: item.Quantity})
	}

	value, err := json.Marshal(eventEnvelope{
		EventId:    uuid.NewString(),
		Type:       string(event.Type),
		PurchaseId: event.PurchaseId,
		UserId:     event.UserId,
		Status:     string(event.Status),
		Total:      domain.RoundMoney(event.Total).StringFixed(2),
		Items:      items,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	return kafka.Message{
		Key:   []byte(strconv.Itoa(event.PurchaseId)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(event.Type)},
		},
	}, nil
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.PurchaseEvent) error {
	return nil
}
