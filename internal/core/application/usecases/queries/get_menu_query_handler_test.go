package queries_test

import (
	"testing"

	"orderdesk/internal/adapters/out/postgres/menurepo"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMenuDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&menurepo.MenuItemDTO{}))
	require.NoError(t, db.Create([]menurepo.MenuItemDTO{
		{ID: uuid.New(), Name: "Margherita", Price: decimal.RequireFromString("8.00"), Category: "pizza", Available: true},
		{ID: uuid.New(), Name: "Diavola", Price: decimal.RequireFromString("9.50"), Category: "pizza", Available: false},
		{ID: uuid.New(), Name: "Cola", Price: decimal.RequireFromString("2.50"), Category: "drinks", Available: true},
	}).Error)
	return db
}

func TestGetMenuQueryHandler_Handle(t *testing.T) {
	db := openMenuDB(t)

	t.Run("should list the whole catalog by category and name", func(t *testing.T) {
		items, err := queries.NewGetMenuQueryHandler(db).Handle(t.Context(), queries.NewGetMenuQuery(false))

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Cola", items[0].Name)
		assert.Equal(t, "2.50", items[0].Price)
		assert.Equal(t, "Diavola", items[1].Name)
		assert.False(t, items[1].Available)
		assert.Equal(t, "Margherita", items[2].Name)
	})

	t.Run("should hide unavailable items", func(t *testing.T) {
		items, err := queries.NewGetMenuQueryHandler(db).Handle(t.Context(), queries.NewGetMenuQuery(true))

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Cola", items[0].Name)
		assert.Equal(t, "Margherita", items[1].Name)
	})

	t.Run("should reject a zero query", func(t *testing.T) {
		_, err := queries.NewGetMenuQueryHandler(db).Handle(t.Context(), queries.GetMenuQuery{})

		require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
	})
}
