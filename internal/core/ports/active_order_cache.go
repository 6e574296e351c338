package ports

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// ErrCacheMiss is returned by ActiveOrderCache.Load when no snapshot is held.
var ErrCacheMiss = errors.New("active order cache miss")

// ActiveOrderCache holds the last snapshot of the order store. Commands apply their own
// results to it directly; the change-event consumer and the refresh job replace it.
// Implementations must be safe for concurrent use.
type ActiveOrderCache interface {
	// Load returns the cached snapshot or ErrCacheMiss.
	Load(ctx context.Context) ([]*order.Order, error)

	// Store replaces the whole snapshot.
	Store(ctx context.Context, orders []*order.Order) error

	// Put inserts or replaces one order. It is a no-op when no snapshot is held.
	Put(ctx context.Context, o *order.Order) error

	// Remove drops one order. Removing an absent order is not an error.
	Remove(ctx context.Context, id kernel.OrderID) error

	// Invalidate discards the snapshot so the next Load misses.
	Invalidate(ctx context.Context) error
}
