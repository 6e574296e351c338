package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

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

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Success(ctx context.Context, message string) {
	m.Called(ctx, message)
}

func (m *MockNotifier) Failure(ctx context.Context, message string, cause error) {
	m.Called(ctx, message, cause)
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

type MockExtractor struct{ mock.Mock }

func (m *MockExtractor) Extract(ctx context.Context, image []byte, contentType string) (ports.ExtractedOrder, error) {
	args := m.Called(ctx, image, contentType)
	return args.Get(0).(ports.ExtractedOrder), args.Error(1)
}

// effectsFixture bundles the collaborators of commands.OrderEffects.
type effectsFixture struct {
	cache     *MockCache
	publisher *MockPublisher
	notifier  *MockNotifier
	effects   *commands.OrderEffects
}

func newEffectsFixture() *effectsFixture {
	f := &effectsFixture{
		cache:     new(MockCache),
		publisher: new(MockPublisher),
		notifier:  new(MockNotifier),
	}
	f.effects = commands.NewOrderEffects(f.cache, f.publisher, f.notifier,
		kernel.FixedClock{At: testNow}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func (f *effectsFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.cache.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func menuItem(t *testing.T, name, price string) *menu.MenuItem {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, p, "pizza", true)
	require.NoError(t, err)
	return item
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(menuItem(t, "Margherita", "8.50"), 1, "")
	require.NoError(t, err)
	o, err := order.NewFactory(kernel.FixedClock{At: testNow}).
		Create(order.Fulfillment{Platform: order.Glovo, Reference: "1234"}, []order.LineItem{line})
	require.NoError(t, err)
	return o
}

type MockImporter struct{ mock.Mock }

func (m *MockImporter) Handle(ctx context.Context, cmd commands.ImportExtractedOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
