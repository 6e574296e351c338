package menu

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// PlaceholderCategory marks items synthesized from extracted names that matched nothing.
const PlaceholderCategory = "extracted"

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a sellable catalog entry.
type MenuItem struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	category  string
	available bool

	guard guard.ConstructorGuard
}

// NewMenuItem validates id and name; the price may be zero.
func NewMenuItem(id kernel.UUID, name string, price kernel.Money, category string, available bool) (*MenuItem, error) {
	item := &MenuItem{
		price:     price,
		category:  strings.TrimSpace(category),
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// NewPlaceholderMenuItem fabricates a transient item for an extracted name with no catalog match.
func NewPlaceholderMenuItem(name string, price kernel.Money) (*MenuItem, error) {
	return NewMenuItem(kernel.NewUUID(), name, price, PlaceholderCategory, true)
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// IsPlaceholder reports whether the item was synthesized from an unmatched name.
func (m *MenuItem) IsPlaceholder() bool {
	return m.category == PlaceholderCategory
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}
