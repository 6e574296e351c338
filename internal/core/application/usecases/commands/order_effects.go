package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// OrderEffects applies the outcome of a committed order mutation outside the transaction:
// the active-order cache is updated from the result, the change event is published and the
// staff is notified. None of these steps can fail the command; their errors are logged.
type OrderEffects struct {
	cache     ports.ActiveOrderCache
	publisher ports.ChangePublisher
	notifier  ports.Notifier
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewOrderEffects(
	cache ports.ActiveOrderCache,
	publisher ports.ChangePublisher,
	notifier ports.Notifier,
	clock kernel.Clock,
	logger *slog.Logger,
) *OrderEffects {
	return &OrderEffects{
		cache:     cache,
		publisher: publisher,
		notifier:  notifier,
		clock:     clock,
		logger:    logger.With("component", "order-effects"),
	}
}

// Saved is applied after an order was added or its status changed.
func (e *OrderEffects) Saved(ctx context.Context, o *order.Order, action ports.ChangeAction, message string) {
	if err := e.cache.Put(ctx, o); err != nil {
		e.logger.WarnContext(ctx, "failed to update active order cache", "order_id", o.ID().String(), "error", err)
	}
	e.publish(ctx, ports.OrderChangedEvent{
		OrderID:    o.ID().String(),
		Action:     action,
		Status:     o.Status().String(),
		OccurredAt: e.clock.Now(),
	})
	e.notifier.Success(ctx, message)
}

// Deleted is applied after an order was removed from the store.
func (e *OrderEffects) Deleted(ctx context.Context, id kernel.OrderID, message string) {
	e.forget(ctx, id)
	e.publish(ctx, ports.OrderChangedEvent{
		OrderID:    id.String(),
		Action:     ports.OrderDeleted,
		OccurredAt: e.clock.Now(),
	})
	e.notifier.Success(ctx, message)
}

// Failed notifies the staff; the cache is left untouched.
func (e *OrderEffects) Failed(ctx context.Context, message string, err error) {
	e.logger.ErrorContext(ctx, message, "error", err)
	e.notifier.Failure(ctx, message, err)
}

func (e *OrderEffects) forget(ctx context.Context, id kernel.OrderID) {
	if err := e.cache.Remove(ctx, id); err != nil {
		e.logger.WarnContext(ctx, "failed to remove order from active order cache", "order_id", id.String(), "error", err)
	}
}

func (e *OrderEffects) publish(ctx context.Context, event ports.OrderChangedEvent) {
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "failed to publish order change",
			"order_id", event.OrderID, "action", string(event.Action), "error", err)
	}
}
