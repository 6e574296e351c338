package http_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC)

func newTestEcho(handlers httpadapter.Handlers) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := httpadapter.NewEcho(logger)
	httpadapter.NewServer(handlers, kernel.FixedClock{At: testNow}, logger).Register(e)
	return e
}

func newMenuItem(t *testing.T, name, price string) *menu.MenuItem {
	t.Helper()
	amount, err := kernel.NewMoney(decimal.RequireFromString(price))
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, amount, "Pizza", true)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(newMenuItem(t, "Margherita", "8.50"), 2, "")
	require.NoError(t, err)
	o, err := order.NewFactory(kernel.FixedClock{At: testNow}).
		Create(order.Fulfillment{Platform: order.Glovo, Reference: "4821"}, []order.LineItem{line})
	require.NoError(t, err)
	return o
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), order.Fulfillment{Platform: order.Phone})
	require.NoError(t, err)
	require.NoError(t, c.AddItem(newMenuItem(t, "Diavola", "10.00"), 1, "extra chili"))
	return c
}

type MockCartCreator struct{ mock.Mock }

func (m *MockCartCreator) Handle(ctx context.Context, cmd commands.CreateCartCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockCartLineUpdater struct{ mock.Mock }

func (m *MockCartLineUpdater) Handle(ctx context.Context, cmd commands.SetCartLineQuantityCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockReceiptScanner struct{ mock.Mock }

func (m *MockReceiptScanner) Handle(ctx context.Context, cmd commands.ScanReceiptCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderAdvancer struct{ mock.Mock }

func (m *MockOrderAdvancer) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderDeleter struct{ mock.Mock }

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockActiveOrdersReader struct{ mock.Mock }

func (m *MockActiveOrdersReader) Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockMenuItemAdder struct{ mock.Mock }

func (m *MockMenuItemAdder) Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (*menu.MenuItem, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}
