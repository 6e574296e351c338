package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler loads the order, checks that the requested status is
// the immediate successor, and stores the transition. Delivered orders disappear from the
// active views but stay in the store.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    *OrderEffects
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory, effects *OrderEffects) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle leaves the cache untouched on any failure.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.advance(ctx, cmd)
	if err != nil {
		h.effects.Failed(ctx, "Could not update order status", err)
		return nil, fmt.Errorf("advance order %s: %w", cmd.OrderID(), err)
	}

	h.effects.Saved(ctx, o, ports.OrderStatusChanged,
		fmt.Sprintf("Order %s is now %s", o.Tag().ShortNumber(), o.Status()))

	return o, nil
}

func (h *AdvanceOrderStatusCommandHandler) advance(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.AdvanceTo(cmd.Next()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
