package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// ImportExtractedOrderCommandHandler matches extracted item names against the menu catalog
// and places the result as a new order. Names that match nothing become placeholder items
// priced with the extracted price, or zero when none was read; they are not errors.
type ImportExtractedOrderCommandHandler struct {
	uowFactory UoWFactory
	factory    *order.Factory
	effects    *OrderEffects
}

func NewImportExtractedOrderCommandHandler(
	uowFactory UoWFactory,
	factory *order.Factory,
	effects *OrderEffects,
) ImportExtractedOrderCommandHandler {
	return ImportExtractedOrderCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		effects:    effects,
	}
}

func (h *ImportExtractedOrderCommandHandler) Handle(ctx context.Context, cmd ImportExtractedOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.MenuRepository().GetAll(ctx)
	if err != nil {
		h.effects.Failed(ctx, "Could not load the menu", err)
		return nil, fmt.Errorf("load menu: %w", err)
	}

	lines, err := resolveLines(menu.NewCatalog(items), cmd.Items())
	if err != nil {
		h.effects.Failed(ctx, "Could not read the extracted items", err)
		return nil, err
	}

	o, err := h.factory.Create(cmd.Fulfillment(), lines)
	if err != nil {
		h.effects.Failed(ctx, "Could not create order", err)
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		h.effects.Failed(ctx, "Could not create order", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		h.effects.Failed(ctx, "Could not create order", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	h.effects.Saved(ctx, o, ports.OrderCreated, createdMessage(o))

	return o, nil
}

// resolveLines keeps the extracted order of items. A missing or zero quantity counts as one.
func resolveLines(catalog menu.Catalog, extracted []ports.ExtractedItem) ([]order.LineItem, error) {
	lines := make([]order.LineItem, 0, len(extracted))
	for _, e := range extracted {
		price := kernel.ZeroMoney()
		if e.UnitPrice != nil {
			p, err := kernel.MoneyFromFloat(*e.UnitPrice)
			if err != nil {
				return nil, err
			}
			price = p
		}

		item, err := catalog.Resolve(e.Name, price)
		if err != nil {
			return nil, err
		}

		quantity := e.Quantity
		if quantity == 0 {
			quantity = 1
		}

		line, err := order.NewLineItem(item, quantity, "")
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
