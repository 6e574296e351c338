// Package rabbitmq consumes order change events and keeps the local active-order cache
// in step with every instance writing to the shared store.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

type refresher interface {
	Handle(ctx context.Context, cmd commands.RefreshActiveOrdersCommand) error
}

// OrderChangesConsumer re-reads the active orders for every change event. Malformed
// messages are dropped; a failed refresh is requeued once.
type OrderChangesConsumer struct {
	deliveries <-chan amqp.Delivery
	refresher  refresher
	logger     *slog.Logger
}

func NewOrderChangesConsumer(deliveries <-chan amqp.Delivery, refresher refresher, logger *slog.Logger) *OrderChangesConsumer {
	return &OrderChangesConsumer{
		deliveries: deliveries,
		refresher:  refresher,
		logger:     logger.With("component", "order-changes-consumer"),
	}
}

// Run blocks until ctx is done or the delivery channel closes.
func (c *OrderChangesConsumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-c.deliveries:
			if !ok {
				c.logger.WarnContext(ctx, "delivery channel closed")
				return
			}
			c.handle(ctx, d)
		}
	}
}

func (c *OrderChangesConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var event ports.OrderChangedEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.WarnContext(ctx, "dropping malformed order change", "routing_key", d.RoutingKey, "error", err)
		_ = d.Nack(false, false)
		return
	}

	reason := fmt.Sprintf("order %s %s", event.OrderID, event.Action)
	if err := c.refresher.Handle(ctx, commands.NewRefreshActiveOrdersCommand(reason)); err != nil {
		c.logger.ErrorContext(ctx, "cache refresh failed", "order_id", event.OrderID, "error", err)
		_ = d.Nack(false, !d.Redelivered)
		return
	}

	if err := d.Ack(false); err != nil {
		c.logger.WarnContext(ctx, "failed to ack order change", "error", err)
	}
}
