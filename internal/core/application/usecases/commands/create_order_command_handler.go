package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// CreateOrderCommandHandler turns a staging cart into a persisted Pending order.
//
// On success the store add happens exactly once, the cart is discarded, and the order is
// put into the active-order cache, published and announced. On a store failure the cart
// is kept so the staff can retry, and the failure is announced.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	carts      ports.CartStore
	factory    *order.Factory
	effects    *OrderEffects
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartStore,
	factory *order.Factory,
	effects *OrderEffects,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		factory:    factory,
		effects:    effects,
	}
}

// Handle rejects an empty cart with errs.ValueIsRequiredError before touching the store.
// Every rejection after the cart was found is announced.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		err = errs.NewValueIsRequiredError("cart items")
		h.effects.Failed(ctx, "Cart is empty", err)
		return nil, err
	}

	o, err := h.factory.Create(c.Header(), c.Lines())
	if err != nil {
		h.effects.Failed(ctx, "Could not create order", err)
		return nil, err
	}

	if err = addOrder(ctx, h.uowFactory.Create(), o); err != nil {
		h.effects.Failed(ctx, "Could not create order", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err = h.carts.Delete(ctx, c.ID()); err != nil {
		h.effects.logger.WarnContext(ctx, "failed to discard cart", "cart_id", c.ID().String(), "error", err)
	}
	h.effects.Saved(ctx, o, ports.OrderCreated, createdMessage(o))

	return o, nil
}

func addOrder(ctx context.Context, uow OrderUoW, o *order.Order) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func createdMessage(o *order.Order) string {
	return fmt.Sprintf("Order %s created (%s)", o.Tag().ShortNumber(), o.Platform().Label())
}
