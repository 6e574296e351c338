package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCartCommandIsNotConstructed = errors.New("cart command must be created via its constructor")
)

// CreateCartCommand opens a staging cart for the selected platform.
type CreateCartCommand struct {
	header order.Fulfillment

	guard guard.ConstructorGuard
}

func NewCreateCartCommand(header order.Fulfillment) (CreateCartCommand, error) {
	if err := header.Platform.Validate(); err != nil {
		return CreateCartCommand{}, err
	}
	return CreateCartCommand{header: header, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCartCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c CreateCartCommand) Header() order.Fulfillment {
	return c.header
}

// AddCartItemCommand adds a catalog item to a cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	note       string

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(cartID, menuItemID kernel.UUID, quantity int, note string) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{note: note, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cartID.Validate(),
		menuItemID.Validate(),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}
	cmd.cartID = cartID
	cmd.menuItemID = menuItemID

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c AddCartItemCommand) CartID() kernel.UUID     { return c.cartID }
func (c AddCartItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c AddCartItemCommand) Quantity() int           { return c.quantity }
func (c AddCartItemCommand) Note() string            { return c.note }

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if err := order.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}

// SetCartLineQuantityCommand changes one line of a cart; quantity 0 removes the line.
type SetCartLineQuantityCommand struct {
	cartID   kernel.UUID
	index    int
	quantity int

	guard guard.ConstructorGuard
}

func NewSetCartLineQuantityCommand(cartID kernel.UUID, index, quantity int) (SetCartLineQuantityCommand, error) {
	if err := cartID.Validate(); err != nil {
		return SetCartLineQuantityCommand{}, err
	}
	if index < 0 {
		return SetCartLineQuantityCommand{}, errs.NewValueIsInvalidError("line index")
	}
	if quantity != 0 {
		if err := order.ValidateQuantity(quantity); err != nil {
			return SetCartLineQuantityCommand{}, err
		}
	}

	return SetCartLineQuantityCommand{
		cartID:   cartID,
		index:    index,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetCartLineQuantityCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c SetCartLineQuantityCommand) CartID() kernel.UUID { return c.cartID }
func (c SetCartLineQuantityCommand) Index() int          { return c.index }
func (c SetCartLineQuantityCommand) Quantity() int       { return c.quantity }

// UpdateCartHeaderCommand replaces the fulfillment header of a cart.
type UpdateCartHeaderCommand struct {
	cartID kernel.UUID
	header order.Fulfillment

	guard guard.ConstructorGuard
}

func NewUpdateCartHeaderCommand(cartID kernel.UUID, header order.Fulfillment) (UpdateCartHeaderCommand, error) {
	if err := errors.Join(cartID.Validate(), header.Platform.Validate()); err != nil {
		return UpdateCartHeaderCommand{}, err
	}
	return UpdateCartHeaderCommand{cartID: cartID, header: header, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCartHeaderCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c UpdateCartHeaderCommand) CartID() kernel.UUID       { return c.cartID }
func (c UpdateCartHeaderCommand) Header() order.Fulfillment { return c.header }

// DiscardCartCommand drops a cart without placing it, e.g. when the dialog is closed.
type DiscardCartCommand struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDiscardCartCommand(cartID kernel.UUID) (DiscardCartCommand, error) {
	if err := cartID.Validate(); err != nil {
		return DiscardCartCommand{}, err
	}
	return DiscardCartCommand{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (c DiscardCartCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c DiscardCartCommand) CartID() kernel.UUID { return c.cartID }
