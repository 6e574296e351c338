package orderrepo_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

var testNow = time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
	return db
}

func createTestOrder(t *testing.T, platform order.Platform, reference string, createdAt time.Time) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("8.50")
	require.NoError(t, err)
	pizza, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", price, "pizza", true)
	require.NoError(t, err)
	cola, err := menu.NewMenuItem(kernel.NewUUID(), "Cola", kernel.ZeroMoney(), "drinks", true)
	require.NoError(t, err)

	first, err := order.NewLineItem(pizza, 2, "no basil")
	require.NoError(t, err)
	second, err := order.NewLineItem(cola, 1, "")
	require.NoError(t, err)

	requested, err := kernel.NewTimeOfDay(19, 30)
	require.NoError(t, err)

	o, err := order.NewFactory(kernel.FixedClock{At: createdAt}).Create(order.Fulfillment{
		Platform:  platform,
		Reference: reference,
		Requested: &requested,
		Customer:  order.NewCustomer("Ana", "+39 333", "Main St 1", "ring twice"),
		Notes:     "extra napkins",
	}, []order.LineItem{first, second})
	require.NoError(t, err)
	return o
}

func TestGormOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	tracker := new(MockAggregateTracker)
	repo := orderrepo.NewGormOrderRepository(db, tracker)

	o := createTestOrder(t, order.Glovo, "1234", testNow)
	tracker.On("TrackAggregate", o.ID().String(), o).Once()

	require.NoError(t, repo.Add(ctx, o))

	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)

	assert.True(t, o.IsEqual(got))
	assert.Equal(t, o.Tag().String(), got.Tag().String())
	assert.Equal(t, order.Glovo, got.Platform())
	assert.Equal(t, order.Pending, got.Status())
	assert.Equal(t, "19:30", got.RequestedTime().String())
	assert.Equal(t, o.Customer(), got.Customer())
	assert.Equal(t, "extra napkins", got.Notes())
	assert.True(t, testNow.Equal(got.CreatedAt()))

	items := got.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita", items[0].Name())
	assert.Equal(t, 2, items[0].Quantity())
	assert.Equal(t, "no basil", items[0].Note())
	assert.Equal(t, "8.50", items[0].UnitPrice().String())
	assert.Equal(t, "Cola", items[1].Name())
	assert.Equal(t, "17.00", got.Total().String())

	tracker.AssertExpectations(t)
}

func TestGormOrderRepository_Get_NotFound(t *testing.T) {
	repo := orderrepo.NewGormOrderRepository(openTestDB(t), new(MockAggregateTracker))

	_, err := repo.Get(t.Context(), kernel.NewOrderID(testNow))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormOrderRepository_Update(t *testing.T) {
	t.Run("should persist the new status", func(t *testing.T) {
		ctx := t.Context()
		tracker := new(MockAggregateTracker)
		tracker.On("TrackAggregate", mock.Anything, mock.Anything)
		repo := orderrepo.NewGormOrderRepository(openTestDB(t), tracker)

		o := createTestOrder(t, order.JustEat, "", testNow)
		require.NoError(t, repo.Add(ctx, o))
		require.NoError(t, o.AdvanceTo(order.InPreparation))

		require.NoError(t, repo.Update(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, got.Status())
		assert.Len(t, got.Items(), 2)
	})

	t.Run("should report a missing order", func(t *testing.T) {
		repo := orderrepo.NewGormOrderRepository(openTestDB(t), new(MockAggregateTracker))

		err := repo.Update(t.Context(), createTestOrder(t, order.JustEat, "", testNow))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormOrderRepository_GetAll(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	repo := orderrepo.NewGormOrderRepository(db, tracker)

	older := createTestOrder(t, order.Glovo, "1", testNow.Add(-time.Hour))
	newer := createTestOrder(t, order.Deliveroo, "2", testNow)
	require.NoError(t, repo.Add(ctx, older))
	require.NoError(t, repo.Add(ctx, newer))

	// a dine-in row written by another client: plain table number, no platform
	require.NoError(t, db.Create(&orderrepo.OrderDTO{
		ID:        "order_1718020000000_abc",
		Tag:       "12",
		Status:    "Delivered",
		CreatedAt: testNow.Add(-2 * time.Hour),
	}).Error)

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, newer.ID(), orders[0].ID())
	assert.Equal(t, older.ID(), orders[1].ID())
	assert.Equal(t, order.UnknownPlatform, orders[2].Platform())
	assert.Equal(t, order.Delivered, orders[2].Status())
	assert.Empty(t, orders[2].Items())
	assert.Nil(t, orders[2].RequestedTime())
}

func TestGormOrderRepository_GetAll_ForeignRows(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	repo := orderrepo.NewGormOrderRepository(db, tracker)

	glovo := createTestOrder(t, order.Glovo, "1234", testNow)
	require.NoError(t, repo.Add(ctx, glovo))

	rows := []orderrepo.OrderDTO{
		{ID: "order_1718028300000_abcdefghi", Tag: "5", Status: "Served", CreatedAt: testNow.Add(-time.Minute)},
		{ID: "2f1c7d3a-9b4e-4c1a-8e7f-1d2c3b4a5f60", Tag: "7", Status: "Pending", CreatedAt: testNow.Add(-2 * time.Minute)},
		{ID: "order_1718028000000_zzz", Tag: "9", Status: "Cancelled", CreatedAt: testNow.Add(-3 * time.Minute)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, glovo.ID(), orders[0].ID())
	assert.Equal(t, order.Glovo, orders[0].Platform())

	assert.Equal(t, "order_1718028300000_abcdefghi", orders[1].ID().String())
	assert.Equal(t, order.Delivered, orders[1].Status())

	assert.Equal(t, "2f1c7d3a-9b4e-4c1a-8e7f-1d2c3b4a5f60", orders[2].ID().String())
	assert.Equal(t, order.Pending, orders[2].Status())

	t.Run("foreign ids stay addressable", func(t *testing.T) {
		id, err := kernel.RestoreOrderID("2f1c7d3a-9b4e-4c1a-8e7f-1d2c3b4a5f60")
		require.NoError(t, err)

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "7", got.Tag().String())
	})
}

func TestGormOrderRepository_Delete(t *testing.T) {
	t.Run("should remove the order and its lines", func(t *testing.T) {
		ctx := t.Context()
		db := openTestDB(t)
		tracker := new(MockAggregateTracker)
		tracker.On("TrackAggregate", mock.Anything, mock.Anything)
		repo := orderrepo.NewGormOrderRepository(db, tracker)

		o := createTestOrder(t, order.UberEats, "9", testNow)
		require.NoError(t, repo.Add(ctx, o))

		require.NoError(t, repo.Delete(ctx, o.ID()))

		_, err := repo.Get(ctx, o.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		var lines int64
		require.NoError(t, db.Model(&orderrepo.LineItemDTO{}).Count(&lines).Error)
		assert.Zero(t, lines)
	})

	t.Run("should report a missing order", func(t *testing.T) {
		repo := orderrepo.NewGormOrderRepository(openTestDB(t), new(MockAggregateTracker))

		err := repo.Delete(t.Context(), kernel.NewOrderID(testNow))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGormOrderRepository_Add_RejectsInvalidOrder(t *testing.T) {
	repo := orderrepo.NewGormOrderRepository(openTestDB(t), new(MockAggregateTracker))

	err := repo.Add(t.Context(), &order.Order{})

	require.Error(t, err)
}
