package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
)

// CartStore keeps staging carts between HTTP requests. Carts are transient and are not
// part of the order store.
type CartStore interface {
	// Add stores a new cart. An id already in the store is rejected.
	Add(ctx context.Context, c *cart.Cart) error

	// Update replaces a stored cart and returns errs.ObjectNotFoundError when the cart is
	// gone, so an edit racing a checkout or a discard cannot bring the cart back.
	Update(ctx context.Context, c *cart.Cart) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// Delete is idempotent.
	Delete(ctx context.Context, id kernel.UUID) error
}
