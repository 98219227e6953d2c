// Package kafka publishes order lifecycle events for downstream consumers
// (notifications, analytics). Events are emitted after the database commit;
// delivery is at-least-once and consumers deduplicate on event id.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fishmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	eventOrderPlaced        = "order_placed"
	eventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is the wire shape of an order lifecycle event. The key of the
// kafka message is the order id, so per-order ordering is preserved within a
// partition.
type OrderEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   float64   `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderEventPublisher implements ports.OrderEventPublisher over a kafka
// writer.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishOrderPlaced announces a freshly placed order.
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderPlaced, aggregate)
}

// PublishOrderStatusChanged announces a committed status transition.
func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderStatusChanged, aggregate)
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func (p *OrderEventPublisher) publish(ctx context.Context, eventType string, aggregate *order.Order) error {
	event := OrderEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		OrderID:       aggregate.ID().String(),
		CustomerID:    aggregate.CustomerID().String(),
		Status:        aggregate.Status().String(),
		PaymentMethod: string(aggregate.PaymentMethod()),
		PaymentStatus: string(aggregate.PaymentStatus()),
		TotalAmount:   aggregate.TotalAmount(),
		OccurredAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}
