package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderdesk/internal/core/ports"
)

// RefreshActiveOrdersCommandHandler reloads every stored order into the cache.
type RefreshActiveOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.ActiveOrderCache
	logger     *slog.Logger
}

func NewRefreshActiveOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.ActiveOrderCache,
	logger *slog.Logger,
) RefreshActiveOrdersCommandHandler {
	return RefreshActiveOrdersCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "active-orders-refresh"),
	}
}

// Handle reads without a transaction; the snapshot is replaced only when the read succeeds.
func (h *RefreshActiveOrdersCommandHandler) Handle(ctx context.Context, cmd RefreshActiveOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.uowFactory.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	if err = h.cache.Store(ctx, orders); err != nil {
		return fmt.Errorf("store active orders: %w", err)
	}

	h.logger.DebugContext(ctx, "active orders refreshed", "reason", cmd.Reason(), "orders", len(orders))
	return nil
}
