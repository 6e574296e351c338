package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// ActiveOrdersReader is satisfied by ActiveOrdersSource.
type ActiveOrdersReader interface {
	Orders(ctx context.Context) ([]*order.Order, error)
}

// GetActiveOrdersQueryHandler projects the cached orders into the filtered and sorted
// flat list. Urgency is recomputed on every call.
type GetActiveOrdersQueryHandler struct {
	source ActiveOrdersReader
	clock  kernel.Clock
}

func NewGetActiveOrdersQueryHandler(source ActiveOrdersReader, clock kernel.Clock) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{source: source, clock: clock}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.source.Orders(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return newOrderViews(services.Project(orders, query.Filter(), query.Sort(), now), now), nil
}
