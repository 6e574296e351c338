package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrImportExtractedOrderCommandIsNotConstructed = errors.New(
		"ImportExtractedOrderCommand must be created via NewImportExtractedOrderCommand constructor",
	)
)

// ImportExtractedOrderCommand creates an order from (name, quantity, unit price) triples,
// typically read from a receipt.
type ImportExtractedOrderCommand struct { //nolint:recvcheck //using for validation
	fulfillment order.Fulfillment
	items       []ports.ExtractedItem

	guard guard.ConstructorGuard
}

// NewImportExtractedOrderCommand builds the fulfillment header from the extracted fields.
// An unreadable requested time is dropped rather than rejected.
func NewImportExtractedOrderCommand(platform order.Platform, extracted ports.ExtractedOrder) (ImportExtractedOrderCommand, error) {
	cmd := ImportExtractedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFulfillment(platform, extracted),
		cmd.setItems(extracted.Items),
	); err != nil {
		return ImportExtractedOrderCommand{}, err
	}

	return cmd, nil
}

func (c ImportExtractedOrderCommand) Validate() error {
	return c.guard.Validate(ErrImportExtractedOrderCommandIsNotConstructed)
}

func (c ImportExtractedOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

func (c ImportExtractedOrderCommand) Items() []ports.ExtractedItem {
	return append([]ports.ExtractedItem(nil), c.items...)
}

func (c *ImportExtractedOrderCommand) setFulfillment(platform order.Platform, extracted ports.ExtractedOrder) error {
	if err := platform.Validate(); err != nil {
		return err
	}

	var requested *kernel.TimeOfDay
	if t, err := kernel.ParseTimeOfDay(extracted.RequestedTime); err == nil {
		requested = &t
	}

	c.fulfillment = order.Fulfillment{
		Platform:  platform,
		Reference: extracted.Reference,
		Requested: requested,
		Customer:  order.NewCustomer(extracted.CustomerName, extracted.Phone, extracted.Address, ""),
		Notes:     extracted.Notes,
	}
	return nil
}

func (c *ImportExtractedOrderCommand) setItems(items []ports.ExtractedItem) error {
	kept := make([]ports.ExtractedItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		kept = append(kept, item)
	}

	if len(kept) == 0 {
		return errs.NewValueIsRequiredError("extracted items")
	}

	c.items = kept
	return nil
}
