package http

import (
	"context"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type (
	CartCreator interface {
		Handle(ctx context.Context, cmd commands.CreateCartCommand) (*cart.Cart, error)
	}
	CartItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (*cart.Cart, error)
	}
	CartLineUpdater interface {
		Handle(ctx context.Context, cmd commands.SetCartLineQuantityCommand) (*cart.Cart, error)
	}
	CartHeaderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateCartHeaderCommand) (*cart.Cart, error)
	}
	CartDiscarder interface {
		Handle(ctx context.Context, cmd commands.DiscardCartCommand) error
	}
	CartReader interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.CartView, error)
	}
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ExtractedOrderImporter interface {
		Handle(ctx context.Context, cmd commands.ImportExtractedOrderCommand) (*order.Order, error)
	}
	ReceiptScanner interface {
		Handle(ctx context.Context, cmd commands.ScanReceiptCommand) (*order.Order, error)
	}
	OrderAdvancer interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (*order.Order, error)
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	ActiveOrdersReader interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error)
	}
	OrderBoardReader interface {
		Handle(ctx context.Context, query queries.GetOrderBoardQuery) ([]queries.BoardColumnView, error)
	}
	MenuReader interface {
		Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.MenuItemView, error)
	}
	MenuItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (*menu.MenuItem, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateCart        CartCreator
	AddCartItem       CartItemAdder
	SetCartLine       CartLineUpdater
	UpdateCartHeader  CartHeaderUpdater
	DiscardCart       CartDiscarder
	CreateOrder       OrderCreator
	ImportOrder       ExtractedOrderImporter
	ScanReceipt       ReceiptScanner
	AdvanceOrder      OrderAdvancer
	DeleteOrder       OrderDeleter
	AddMenuItem       MenuItemAdder

	// Query handlers
	GetCart         CartReader
	GetActiveOrders ActiveOrdersReader
	GetOrderBoard   OrderBoardReader
	GetMenu         MenuReader
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	clock    kernel.Clock
	logger   *slog.Logger
}

func NewServer(handlers Handlers, clock kernel.Clock, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		clock:    clock,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.AddMenuItem)

	api.POST("/carts", s.CreateCart)
	api.GET("/carts/:id", s.GetCart)
	api.PUT("/carts/:id", s.UpdateCartHeader)
	api.DELETE("/carts/:id", s.DiscardCart)
	api.POST("/carts/:id/items", s.AddCartItem)
	api.PUT("/carts/:id/items/:index", s.SetCartLineQuantity)
	api.DELETE("/carts/:id/items/:index", s.RemoveCartLine)
	api.POST("/carts/:id/checkout", s.Checkout)

	api.GET("/orders", s.GetActiveOrders)
	api.GET("/orders/board", s.GetOrderBoard)
	api.POST("/orders/scan", s.ScanReceipt)
	api.POST("/orders/import", s.ImportOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
