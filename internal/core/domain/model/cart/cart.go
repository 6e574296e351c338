package cart

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the staging entity behind the order-entry screen.
type Cart struct {
	id     kernel.UUID
	header order.Fulfillment
	lines  []order.LineItem

	guard guard.ConstructorGuard
}

func NewCart(id kernel.UUID, header order.Fulfillment) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		id:     id,
		header: header,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart rebuilds a cart from a cart store snapshot.
func RestoreCart(id kernel.UUID, header order.Fulfillment, lines []order.LineItem) (*Cart, error) {
	c, err := NewCart(id, header)
	if err != nil {
		return nil, err
	}
	c.lines = append([]order.LineItem(nil), lines...)
	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

func (c *Cart) Header() order.Fulfillment {
	return c.header
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []order.LineItem {
	return append([]order.LineItem(nil), c.lines...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// AddItem appends item or, when a line for the same menu item already exists, increases
// its quantity. The note of the existing line is kept.
func (c *Cart) AddItem(item *menu.MenuItem, quantity int, note string) error {
	if err := order.ValidateQuantity(quantity); err != nil {
		return err
	}

	for i, line := range c.lines {
		if item != nil && line.MenuItemID().IsEqual(item.ID()) {
			merged, err := line.WithQuantity(line.Quantity() + quantity)
			if err != nil {
				return err
			}
			c.lines[i] = merged
			return nil
		}
	}

	line, err := order.NewLineItem(item, quantity, note)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity changes the quantity of the line at index. Zero removes the line.
func (c *Cart) SetQuantity(index, quantity int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	if quantity == 0 {
		return c.RemoveLine(index)
	}

	line, err := c.lines[index].WithQuantity(quantity)
	if err != nil {
		return err
	}
	c.lines[index] = line
	return nil
}

func (c *Cart) RemoveLine(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// UpdateHeader replaces the fulfillment header. The platform must be known.
func (c *Cart) UpdateHeader(header order.Fulfillment) error {
	if err := header.Platform.Validate(); err != nil {
		return err
	}
	c.header = header
	return nil
}

// Clear drops every line and keeps the header.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) checkIndex(index int) error {
	if index < 0 || index >= len(c.lines) {
		return errs.NewValueIsOutOfRangeErrorWithCause("line index", index, 0, len(c.lines)-1,
			fmt.Errorf("cart %s has %d lines", c.id, len(c.lines)))
	}
	return nil
}
