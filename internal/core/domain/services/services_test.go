package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC)
}

func timeOfDay(t *testing.T, hour, minute int) *kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return &tod
}

type orderFixture struct {
	tag       string
	platform  order.Platform
	status    order.Status
	createdAt time.Time
	requested *kernel.TimeOfDay
	notes     string
	customer  order.Customer
}

func restore(t *testing.T, s orderFixture) *order.Order {
	t.Helper()

	tag, err := order.DisplayTagFromString(s.tag)
	require.NoError(t, err)

	price, err := kernel.MoneyFromString("5")
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", price, "pizza", true)
	require.NoError(t, err)
	line, err := order.NewLineItem(item, 1, "")
	require.NoError(t, err)

	status := s.status
	if status == order.Unknown {
		status = order.Pending
	}
	createdAt := s.createdAt
	if createdAt.IsZero() {
		createdAt = at(12, 0)
	}

	o, err := order.RestoreOrder(
		kernel.NewOrderID(createdAt),
		tag,
		s.platform,
		[]order.LineItem{line},
		status,
		s.requested,
		s.customer,
		s.notes,
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func tags(orders []*order.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Tag().String())
	}
	return result
}
