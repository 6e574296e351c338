// Package ports defines the contracts between the order lifecycle core and its
// infrastructure: the order store, the menu catalog, the active-order cache, the staging
// cart store, the notification sink, the change-event channel and the document extractor.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is shared with other clients, so GetAll may return dine-in and delivered rows.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every stored order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and its line items permanently.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Delete(ctx context.Context, id kernel.OrderID) error
}
