package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 999
)

// LineItem is a snapshot of a menu item at ordering time: later menu price changes do not
// alter the order.
type LineItem struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	category   string
	quantity   int
	note       string
}

// NewLineItem snapshots item with the given quantity.
func NewLineItem(item *menu.MenuItem, quantity int, note string) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	return RestoreLineItem(item.ID(), item.Name(), item.Price(), item.Category(), quantity, note)
}

// RestoreLineItem rebuilds a line from persisted columns.
func RestoreLineItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	category string,
	quantity int,
	note string,
) (LineItem, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	if strings.TrimSpace(name) == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       strings.TrimSpace(name),
		unitPrice:  unitPrice,
		category:   category,
		quantity:   quantity,
		note:       strings.TrimSpace(note),
	}, nil
}

// ValidateQuantity rejects quantities outside [MinQuantity, MaxQuantity].
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	return nil
}

func (l LineItem) MenuItemID() kernel.UUID { return l.menuItemID }
func (l LineItem) Name() string            { return l.name }
func (l LineItem) UnitPrice() kernel.Money { return l.unitPrice }
func (l LineItem) Category() string        { return l.category }
func (l LineItem) Quantity() int           { return l.quantity }
func (l LineItem) Note() string            { return l.note }

// Subtotal is unit price times quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}

// WithQuantity returns a copy of the line with another quantity.
func (l LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	l.quantity = quantity
	return l, nil
}

func (l LineItem) String() string {
	return fmt.Sprintf("%dx %s", l.quantity, l.name)
}
