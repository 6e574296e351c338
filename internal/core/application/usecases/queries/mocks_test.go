package queries_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC)

type MockCache struct{ mock.Mock }

func (m *MockCache) Load(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockCache) Store(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockCache) Put(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCache) Remove(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLister struct{ mock.Mock }

func (m *MockLister) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockReader struct{ mock.Mock }

func (m *MockReader) Orders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartStore) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartStore) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func lineItem(t *testing.T, name, price string, quantity int) order.LineItem {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, p, "pizza", true)
	require.NoError(t, err)
	line, err := order.NewLineItem(item, quantity, "")
	require.NoError(t, err)
	return line
}

// newOrder stores an order created minutesAgo before testNow for platform.
func newOrder(t *testing.T, platform order.Platform, reference string, minutesAgo int, requested *kernel.TimeOfDay) *order.Order {
	t.Helper()
	createdAt := testNow.Add(-time.Duration(minutesAgo) * time.Minute)
	tag, err := order.NewDisplayTag(platform, reference, createdAt)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewOrderID(createdAt),
		tag,
		platform,
		[]order.LineItem{lineItem(t, "Margherita", "8.50", 2)},
		requested,
		order.Customer{},
		"",
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func timeOfDay(t *testing.T, hour, minute int) *kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return &tod
}
