package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes confirmed orders from the store.
//
// Deleting an id that is already gone returns errs.ObjectNotFoundError; the order is still
// dropped from the cache so a retry never leaves a stale row on the board.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    *OrderEffects
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, effects *OrderEffects) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Confirmed() {
		return ErrDeletionNotConfirmed
	}

	if err := h.delete(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.effects.forget(ctx, cmd.OrderID())
		}
		h.effects.Failed(ctx, "Could not delete order", err)
		return fmt.Errorf("delete order %s: %w", cmd.OrderID(), err)
	}

	h.effects.Deleted(ctx, cmd.OrderID(), "Order deleted")
	return nil
}

func (h *DeleteOrderCommandHandler) delete(ctx context.Context, cmd DeleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
