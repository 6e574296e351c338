package http

import (
	"net/http"
	"strconv"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCart handles POST /api/v1/carts.
func (s *Server) CreateCart(ctx echo.Context) error {
	var req cartHeaderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	header, err := req.toFulfillment()
	if err != nil {
		return s.fail(ctx, "create cart", err)
	}

	cmd, err := commands.NewCreateCartCommand(header)
	if err != nil {
		return s.fail(ctx, "create cart", err)
	}

	created, err := s.handlers.CreateCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create cart", err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewCartView(created))
}

// GetCart handles GET /api/v1/carts/:id.
func (s *Server) GetCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return s.fail(ctx, "get cart", err)
	}

	view, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get cart", err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// UpdateCartHeader handles PUT /api/v1/carts/:id.
func (s *Server) UpdateCartHeader(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	var req cartHeaderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	header, err := req.toFulfillment()
	if err != nil {
		return s.fail(ctx, "update cart", err)
	}

	cmd, err := commands.NewUpdateCartHeaderCommand(cartID, header)
	if err != nil {
		return s.fail(ctx, "update cart", err)
	}

	updated, err := s.handlers.UpdateCartHeader.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "update cart", err)
	}

	return ctx.JSON(http.StatusOK, queries.NewCartView(updated))
}

// DiscardCart handles DELETE /api/v1/carts/:id.
func (s *Server) DiscardCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	cmd, err := commands.NewDiscardCartCommand(cartID)
	if err != nil {
		return s.fail(ctx, "discard cart", err)
	}

	if err := s.handlers.DiscardCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "discard cart", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /api/v1/carts/:id/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewAddCartItemCommand(cartID, menuItemID, req.Quantity, req.Note)
	if err != nil {
		return s.fail(ctx, "add cart item", err)
	}

	updated, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "add cart item", err)
	}

	return ctx.JSON(http.StatusOK, queries.NewCartView(updated))
}

// SetCartLineQuantity handles PUT /api/v1/carts/:id/items/:index.
func (s *Server) SetCartLineQuantity(ctx echo.Context) error {
	var req setQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.setLineQuantity(ctx, req.Quantity)
}

// RemoveCartLine handles DELETE /api/v1/carts/:id/items/:index.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	return s.setLineQuantity(ctx, 0)
}

func (s *Server) setLineQuantity(ctx echo.Context, quantity int) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Invalid line index")
	}

	cmd, err := commands.NewSetCartLineQuantityCommand(cartID, index, quantity)
	if err != nil {
		return s.fail(ctx, "update cart line", err)
	}

	updated, err := s.handlers.SetCartLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "update cart line", err)
	}

	return ctx.JSON(http.StatusOK, queries.NewCartView(updated))
}

// Checkout handles POST /api/v1/carts/:id/checkout. The cart is consumed on success and
// kept when the order cannot be stored.
func (s *Server) Checkout(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	cmd, err := commands.NewCreateOrderCommand(cartID)
	if err != nil {
		return s.fail(ctx, "create order", err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewOrderView(created, s.clock.Now()))
}
