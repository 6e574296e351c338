package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand registers a new catalog entry.
type AddMenuItemCommand struct {
	item *menu.MenuItem

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(name string, price kernel.Money, category string, available bool) (AddMenuItemCommand, error) {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, price, category, available)
	if err != nil {
		return AddMenuItemCommand{}, err
	}
	return AddMenuItemCommand{item: item, guard: guard.NewConstructorGuard()}, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Item() *menu.MenuItem {
	return c.item
}

// AddMenuItemCommandHandler persists catalog entries.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (*menu.MenuItem, error) {
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

	if err := uow.MenuRepository().Add(ctx, cmd.Item()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Item(), nil
}
