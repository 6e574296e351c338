package http

import (
	"io"
	"net/http"
	"strconv"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// GetActiveOrders handles GET /api/v1/orders?platform=&sort=.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	filter, err := services.ParsePlatformFilter(ctx.QueryParam("platform"))
	if err != nil {
		return s.fail(ctx, "list orders", err)
	}

	mode, err := services.ParseSortMode(ctx.QueryParam("sort"))
	if err != nil {
		return s.fail(ctx, "list orders", err)
	}

	views, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery(filter, mode))
	if err != nil {
		return s.fail(ctx, "list orders", err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetOrderBoard handles GET /api/v1/orders/board.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	columns, err := s.handlers.GetOrderBoard.Handle(ctx.Request().Context(), queries.NewGetOrderBoardQuery())
	if err != nil {
		return s.fail(ctx, "get board", err)
	}

	return ctx.JSON(http.StatusOK, columns)
}

// ScanReceipt handles POST /api/v1/orders/scan with multipart fields "platform" and "image".
func (s *Server) ScanReceipt(ctx echo.Context) error {
	platform, err := order.ParsePlatform(ctx.FormValue("platform"))
	if err != nil {
		return s.fail(ctx, "scan receipt", err)
	}

	header, err := ctx.FormFile("image")
	if err != nil {
		return badRequest(ctx, "Missing receipt image")
	}
	if header.Size > commands.MaxReceiptImageBytes {
		return s.fail(ctx, "scan receipt", errImageTooLarge(header.Size))
	}

	file, err := header.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable receipt image")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, commands.MaxReceiptImageBytes+1))
	if err != nil {
		return badRequest(ctx, "Unreadable receipt image")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}

	cmd, err := commands.NewScanReceiptCommand(platform, image, contentType)
	if err != nil {
		return s.fail(ctx, "scan receipt", err)
	}

	created, err := s.handlers.ScanReceipt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "scan receipt", err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewOrderView(created, s.clock.Now()))
}

// ImportOrder handles POST /api/v1/orders/import with already extracted receipt data.
func (s *Server) ImportOrder(ctx echo.Context) error {
	var req importOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	platform, err := order.ParsePlatform(req.Platform)
	if err != nil {
		return s.fail(ctx, "import order", err)
	}

	cmd, err := commands.NewImportExtractedOrderCommand(platform, req.Order)
	if err != nil {
		return s.fail(ctx, "import order", err)
	}

	created, err := s.handlers.ImportOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "import order", err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewOrderView(created, s.clock.Now()))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.RestoreOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req advanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, "advance order", err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, next)
	if err != nil {
		return s.fail(ctx, "advance order", err)
	}

	updated, err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "advance order", err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderView(updated, s.clock.Now()))
}

// DeleteOrder handles DELETE /api/v1/orders/:id?confirm=true.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.RestoreOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	confirmed := false
	if raw := ctx.QueryParam("confirm"); raw != "" {
		if confirmed, err = strconv.ParseBool(raw); err != nil {
			return badRequest(ctx, "Invalid confirm flag")
		}
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, confirmed)
	if err != nil {
		return s.fail(ctx, "delete order", err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "delete order", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
