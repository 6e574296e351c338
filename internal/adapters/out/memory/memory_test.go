package memory_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 10, 14, 5, 0, 0, time.UTC)

func menuItem(t *testing.T, name string) *menu.MenuItem {
	t.Helper()
	price, err := kernel.MoneyFromString("8.50")
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, price, "pizza", true)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, reference string, createdAt time.Time) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(menuItem(t, "Margherita"), 1, "")
	require.NoError(t, err)
	o, err := order.NewFactory(kernel.FixedClock{At: createdAt}).
		Create(order.Fulfillment{Platform: order.Glovo, Reference: reference}, []order.LineItem{line})
	require.NoError(t, err)
	return o
}
