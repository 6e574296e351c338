package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// CreateCartCommandHandler stores a new empty cart.
type CreateCartCommandHandler struct {
	carts ports.CartStore
}

func NewCreateCartCommandHandler(carts ports.CartStore) CreateCartCommandHandler {
	return CreateCartCommandHandler{carts: carts}
}

func (h *CreateCartCommandHandler) Handle(ctx context.Context, cmd CreateCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := cart.NewCart(kernel.NewUUID(), cmd.Header())
	if err != nil {
		return nil, err
	}

	if err = h.carts.Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddCartItemCommandHandler looks the item up in the catalog and merges it into the cart.
type AddCartItemCommandHandler struct {
	carts      ports.CartStore
	uowFactory MenuUoWFactory
}

func NewAddCartItemCommandHandler(carts ports.CartStore, uowFactory MenuUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{carts: carts, uowFactory: uowFactory}
}

func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}

	item, err := h.uowFactory.Create().MenuRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable() {
		return nil, errs.NewValueIsInvalidErrorWithCause("menu item", fmt.Errorf("%s is not available", item.Name()))
	}

	if err = c.AddItem(item, cmd.Quantity(), cmd.Note()); err != nil {
		return nil, err
	}

	if err = h.carts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetCartLineQuantityCommandHandler changes or removes one cart line.
type SetCartLineQuantityCommandHandler struct {
	carts ports.CartStore
}

func NewSetCartLineQuantityCommandHandler(carts ports.CartStore) SetCartLineQuantityCommandHandler {
	return SetCartLineQuantityCommandHandler{carts: carts}
}

func (h *SetCartLineQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartLineQuantityCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}

	if err = c.SetQuantity(cmd.Index(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = h.carts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCartHeaderCommandHandler replaces the cart header.
type UpdateCartHeaderCommandHandler struct {
	carts ports.CartStore
}

func NewUpdateCartHeaderCommandHandler(carts ports.CartStore) UpdateCartHeaderCommandHandler {
	return UpdateCartHeaderCommandHandler{carts: carts}
}

func (h *UpdateCartHeaderCommandHandler) Handle(ctx context.Context, cmd UpdateCartHeaderCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}

	if err = c.UpdateHeader(cmd.Header()); err != nil {
		return nil, err
	}

	if err = h.carts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DiscardCartCommandHandler deletes a cart. Discarding twice is not an error.
type DiscardCartCommandHandler struct {
	carts ports.CartStore
}

func NewDiscardCartCommandHandler(carts ports.CartStore) DiscardCartCommandHandler {
	return DiscardCartCommandHandler{carts: carts}
}

func (h *DiscardCartCommandHandler) Handle(ctx context.Context, cmd DiscardCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.carts.Delete(ctx, cmd.CartID())
}
