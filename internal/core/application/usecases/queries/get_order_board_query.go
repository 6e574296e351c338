package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrGetOrderBoardQueryIsNotConstructed = errors.New(
		"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
	)
)

// GetOrderBoardQuery retrieves the active orders grouped into one column per platform.
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// BoardColumnView is one platform column.
type BoardColumnView struct {
	Platform string      `json:"platform"`
	Label    string      `json:"label"`
	Color    string      `json:"color"`
	Kind     string      `json:"kind"`
	Count    int         `json:"count"`
	Orders   []OrderView `json:"orders"`
}

// GetOrderBoardQueryHandler builds the grouped board. Each column keeps the newest-first
// order of the base list.
type GetOrderBoardQueryHandler struct {
	source ActiveOrdersReader
	clock  kernel.Clock
}

func NewGetOrderBoardQueryHandler(source ActiveOrdersReader, clock kernel.Clock) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{source: source, clock: clock}
}

func (h GetOrderBoardQueryHandler) Handle(ctx context.Context, query GetOrderBoardQuery) ([]BoardColumnView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.source.Orders(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	columns := services.GroupByPlatform(orders)
	board := make([]BoardColumnView, 0, len(columns))
	for _, column := range columns {
		board = append(board, BoardColumnView{
			Platform: column.Platform.Key(),
			Label:    column.Platform.Label(),
			Color:    column.Platform.Color(),
			Kind:     column.Platform.FulfillmentKind().String(),
			Count:    len(column.Orders),
			Orders:   newOrderViews(column.Orders, now),
		})
	}

	return board, nil
}
