package ports

import (
	"context"
	"time"
)

// ChangeAction names what happened to an order.
type ChangeAction string

const (
	OrderCreated       ChangeAction = "created"
	OrderStatusChanged ChangeAction = "status_changed"
	OrderDeleted       ChangeAction = "deleted"
)

// OrderChangedEvent is broadcast after every successful mutation so that other instances
// refresh their active-order cache.
type OrderChangedEvent struct {
	OrderID    string       `json:"order_id"`
	Action     ChangeAction `json:"action"`
	Status     string       `json:"status,omitempty"`
	Source     string       `json:"source,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ChangePublisher sends OrderChangedEvent to the change-notification channel.
type ChangePublisher interface {
	Publish(ctx context.Context, event OrderChangedEvent) error
}
