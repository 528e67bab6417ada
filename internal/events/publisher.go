// Package events publishes order lifecycle messages to RabbitMQ. Order
// creations go to a topic exchange keyed by truck; status changes fan
// out to every subscriber (customer notifications, truck dashboards).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/connections/rabbitmq"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

const (
	OrdersExchange  = "orders_topic"
	UpdatesExchange = "order_updates_fanout"
)

type Publisher struct {
	client *rabbitmq.Client
}

func NewPublisher(client *rabbitmq.Client) (*Publisher, error) {
	ch := client.Channel()
	if err := ch.ExchangeDeclare(OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", OrdersExchange, err)
	}
	if err := ch.ExchangeDeclare(UpdatesExchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", UpdatesExchange, err)
	}
	return &Publisher{client: client}, nil
}

func (p *Publisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	msg := domain.OrderCreatedMessage{
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		TruckID:     order.TruckID,
		TimeSlotID:  order.TimeSlotID,
		TotalAmount: order.TotalAmount.String(),
		Items:       order.Items,
		Timestamp:   time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order created message: %w", err)
	}

	key := fmt.Sprintf("truck.%d.created", order.TruckID)
	return p.publish(ctx, OrdersExchange, key, body, order.OrderNumber)
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, order *domain.Order, old domain.OrderStatus) error {
	msg := domain.StatusChangedMessage{
		OrderNumber: order.OrderNumber,
		OldStatus:   old.String(),
		NewStatus:   order.Status.String(),
		Timestamp:   time.Now().UTC(),
	}
	if order.CancellationReason != nil {
		msg.Reason = *order.CancellationReason
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal status message: %w", err)
	}

	return p.publish(ctx, UpdatesExchange, "", body, order.OrderNumber)
}

func (p *Publisher) publish(ctx context.Context, exchange, key string, body []byte, correlationID string) error {
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.client.Publish(pctx, exchange, key, body,
		amqp.Table{"x-source": "scheduling-core"},
		uuid.NewString(), correlationID)
}
