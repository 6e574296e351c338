package http

import (
	"net/http"
	"strconv"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetMenu handles GET /api/v1/menu. Pass available=true to hide unavailable items.
func (s *Server) GetMenu(ctx echo.Context) error {
	onlyAvailable := false
	if raw := ctx.QueryParam("available"); raw != "" {
		var err error
		if onlyAvailable, err = strconv.ParseBool(raw); err != nil {
			return badRequest(ctx, "Invalid available flag")
		}
	}

	items, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery(onlyAvailable))
	if err != nil {
		return s.fail(ctx, "get menu", err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var req addMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.fail(ctx, "add menu item", err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	cmd, err := commands.NewAddMenuItemCommand(req.Name, price, req.Category, available)
	if err != nil {
		return s.fail(ctx, "add menu item", err)
	}

	item, err := s.handlers.AddMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "add menu item", err)
	}

	return ctx.JSON(http.StatusCreated, queries.MenuItemView{
		ID:        item.ID().String(),
		Name:      item.Name(),
		Price:     item.Price().String(),
		Category:  item.Category(),
		Available: item.IsAvailable(),
	})
}
