package services_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDeliveryOrder(t *testing.T) {
	tests := []struct {
		name    string
		fixture orderFixture
		want    bool
	}{
		{"kind prefix", orderFixture{tag: "DEL_GLOVO_1"}, true},
		{"pickup prefix", orderFixture{tag: "ASP_TAKEAWAY_1"}, true},
		{"explicit platform with numeric tag", orderFixture{tag: "7", platform: order.Phone}, true},
		{"non numeric tag", orderFixture{tag: "T7"}, true},
		{"dine-in table", orderFixture{tag: "12"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.IsDeliveryOrder(restore(t, tt.fixture)))
		})
	}
}

func TestActiveOrders(t *testing.T) {
	orders := []*order.Order{
		restore(t, orderFixture{tag: "DEL_GLOVO_old", createdAt: at(10, 0)}),
		restore(t, orderFixture{tag: "DEL_GLOVO_done", createdAt: at(13, 0), status: order.Delivered}),
		restore(t, orderFixture{tag: "12", createdAt: at(13, 30)}),
		restore(t, orderFixture{tag: "ASP_PHONE_new", createdAt: at(12, 0), status: order.Ready}),
		restore(t, orderFixture{tag: "DEL_UBER_EATS_mid", createdAt: at(11, 0), status: order.InPreparation}),
	}

	active := services.ActiveOrders(orders)

	assert.Equal(t, []string{"ASP_PHONE_new", "DEL_UBER_EATS_mid", "DEL_GLOVO_old"}, tags(active))
}

func TestGroupByPlatform(t *testing.T) {
	orders := []*order.Order{
		restore(t, orderFixture{tag: "DEL_GLOVO_1", createdAt: at(10, 0)}),
		restore(t, orderFixture{tag: "DEL_JUST-EAT_2", createdAt: at(11, 0)}),
		restore(t, orderFixture{tag: "DEL_JUST_EAT_3", createdAt: at(12, 0)}),
		restore(t, orderFixture{tag: "ASP_TAKEAWAY_4", createdAt: at(13, 0)}),
		restore(t, orderFixture{tag: "misc", createdAt: at(14, 0)}),
		restore(t, orderFixture{tag: "DEL_GLOVO_5", status: order.Delivered}),
	}

	columns := services.GroupByPlatform(orders)

	require.Len(t, columns, len(order.Platforms()))
	got := map[order.Platform][]string{}
	total := 0
	for i, column := range columns {
		assert.Equal(t, order.Platforms()[i], column.Platform)
		assert.NotNil(t, column.Orders)
		got[column.Platform] = tags(column.Orders)
		total += len(column.Orders)
	}

	assert.Equal(t, []string{"DEL_JUST_EAT_3", "DEL_JUST-EAT_2"}, got[order.JustEat])
	assert.Equal(t, []string{"DEL_GLOVO_1"}, got[order.Glovo])
	assert.Equal(t, []string{"ASP_TAKEAWAY_4"}, got[order.Takeaway])
	assert.Empty(t, got[order.UberEats])
	assert.Equal(t, 4, total, "each order lands in exactly one column and unknown tags in none")
}

func TestProject(t *testing.T) {
	now := at(14, 0)
	orders := []*order.Order{
		restore(t, orderFixture{tag: "DEL_GLOVO_a", createdAt: at(13, 50)}),
		restore(t, orderFixture{tag: "DEL_GLOVO_b", createdAt: at(13, 40), requested: timeOfDay(t, 14, 40)}),
		restore(t, orderFixture{tag: "ASP_TAKEAWAY_c", createdAt: at(13, 30), requested: timeOfDay(t, 14, 10)}),
		restore(t, orderFixture{tag: "DEL_DELIVEROO_d", createdAt: at(13, 20), notes: "time: 13:30"}),
		restore(t, orderFixture{tag: "misc_e", createdAt: at(13, 10)}),
	}

	t.Run("should sort by urgency with untimed orders last", func(t *testing.T) {
		got := services.Project(orders, services.FilterAll, services.SortByUrgency, now)

		assert.Equal(t, []string{"DEL_DELIVEROO_d", "ASP_TAKEAWAY_c", "DEL_GLOVO_b", "DEL_GLOVO_a", "misc_e"}, tags(got))
	})

	t.Run("should sort by platform key keeping creation order inside a platform", func(t *testing.T) {
		got := services.Project(orders, services.FilterAll, services.SortByPlatform, now)

		assert.Equal(t, []string{"DEL_DELIVEROO_d", "DEL_GLOVO_a", "DEL_GLOVO_b", "misc_e", "ASP_TAKEAWAY_c"}, tags(got))
	})

	t.Run("should filter by platform", func(t *testing.T) {
		got := services.Project(orders, services.FilterPlatform(order.Glovo), services.SortByUrgency, now)

		assert.Equal(t, []string{"DEL_GLOVO_b", "DEL_GLOVO_a"}, tags(got))
	})

	t.Run("should treat underivable platforms as phone", func(t *testing.T) {
		got := services.Project(orders, services.FilterPlatform(order.Phone), services.SortByUrgency, now)

		assert.Equal(t, []string{"misc_e"}, tags(got))
	})

	t.Run("should apply the evening rollover when sorting", func(t *testing.T) {
		evening := at(21, 0)
		late := []*order.Order{
			restore(t, orderFixture{tag: "DEL_GLOVO_night", createdAt: at(20, 0), requested: timeOfDay(t, 4, 0)}),
			restore(t, orderFixture{tag: "DEL_GLOVO_soon", createdAt: at(19, 0), requested: timeOfDay(t, 21, 30)}),
		}

		got := services.Project(late, services.FilterAll, services.SortByUrgency, evening)

		assert.Equal(t, []string{"DEL_GLOVO_soon", "DEL_GLOVO_night"}, tags(got))
	})

	t.Run("should return an empty list for no orders", func(t *testing.T) {
		got := services.Project(nil, services.FilterAll, services.SortByUrgency, now)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestParseSortMode(t *testing.T) {
	mode, err := services.ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, services.SortByUrgency, mode)

	mode, err = services.ParseSortMode("Platform")
	require.NoError(t, err)
	assert.Equal(t, services.SortByPlatform, mode)

	_, err = services.ParseSortMode("newest")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParsePlatformFilter(t *testing.T) {
	for _, in := range []string{"", "ALL", "all"} {
		f, err := services.ParsePlatformFilter(in)
		require.NoError(t, err)
		assert.True(t, f.IsAll())
		assert.Equal(t, "ALL", f.String())
	}

	f, err := services.ParsePlatformFilter("uber-eats")
	require.NoError(t, err)
	assert.False(t, f.IsAll())
	assert.Equal(t, order.UberEats, f.Platform())

	_, err = services.ParsePlatformFilter("table")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
