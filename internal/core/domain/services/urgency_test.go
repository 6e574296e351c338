package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		hour, min int
		level     services.UrgencyLevel
		minutes   int
		label     string
	}{
		{"ten minutes ahead is urgent", at(14, 0), 14, 10, services.Urgent, 10, "in 10 min"},
		{"fifteen minutes ahead is urgent", at(14, 0), 14, 15, services.Urgent, 15, "in 15 min"},
		{"twenty five minutes ahead is warning", at(14, 0), 14, 25, services.Warning, 25, "in 25 min"},
		{"thirty minutes ahead is warning", at(14, 0), 14, 30, services.Warning, 30, "in 30 min"},
		{"an hour ahead is normal", at(14, 0), 15, 0, services.Normal, 60, "in 60 min"},
		{"half an hour late is still urgent", at(14, 0), 13, 30, services.Urgent, -30, "late by 30 min"},
		{"an hour late falls back to warning", at(14, 0), 13, 0, services.Warning, -60, "late by 60 min"},
		{"due now", at(14, 0), 14, 0, services.Urgent, 0, "now"},
		{"past midnight after 22:00 rolls over", at(23, 30), 0, 15, services.Warning, 45, "in 45 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := restore(t, orderFixture{tag: "DEL_GLOVO_1", requested: timeOfDay(t, tt.hour, tt.min)})

			u := services.ClassifyUrgency(o, tt.now)

			require.NotNil(t, u)
			assert.Equal(t, tt.level, u.Level)
			assert.Equal(t, tt.minutes, u.MinutesUntilDue)
			assert.Equal(t, tt.label, u.Label)
		})
	}

	t.Run("should return nil without any requested time", func(t *testing.T) {
		o := restore(t, orderFixture{tag: "DEL_GLOVO_1", notes: "ring twice"})

		assert.Nil(t, services.ClassifyUrgency(o, at(14, 0)))
	})

	t.Run("should round partial minutes up", func(t *testing.T) {
		o := restore(t, orderFixture{tag: "DEL_GLOVO_1", requested: timeOfDay(t, 14, 10)})
		now := at(14, 0).Add(30 * time.Second)

		u := services.ClassifyUrgency(o, now)

		require.NotNil(t, u)
		assert.Equal(t, 10, u.MinutesUntilDue)
	})
}

func TestResolveRequestedTime(t *testing.T) {
	t.Run("should prefer the structured field", func(t *testing.T) {
		o := restore(t, orderFixture{tag: "DEL_GLOVO_1", requested: timeOfDay(t, 20, 0), notes: "time: 21:00"})

		got, ok := services.ResolveRequestedTime(o)

		require.True(t, ok)
		assert.Equal(t, "20:00", got.String())
	})

	t.Run("should fall back to the order notes", func(t *testing.T) {
		o := restore(t, orderFixture{tag: "DEL_GLOVO_1", notes: "Call first. Time: 9.05"})

		got, ok := services.ResolveRequestedTime(o)

		require.True(t, ok)
		assert.Equal(t, "09:05", got.String())
	})

	t.Run("should fall back to the customer notes", func(t *testing.T) {
		o := restore(t, orderFixture{
			tag:      "DEL_GLOVO_1",
			notes:    "no marker",
			customer: order.NewCustomer("", "", "", "TIME:21:45 please"),
		})

		got, ok := services.ResolveRequestedTime(o)

		require.True(t, ok)
		assert.Equal(t, "21:45", got.String())
	})

	t.Run("should ignore out of range markers", func(t *testing.T) {
		o := restore(t, orderFixture{tag: "DEL_GLOVO_1", notes: "time: 27:90"})

		_, ok := services.ResolveRequestedTime(o)

		assert.False(t, ok)
	})
}

func TestDueInstant(t *testing.T) {
	early := *timeOfDay(t, 1, 0)
	late := *timeOfDay(t, 4, 0)

	t.Run("card rollover needs an hour after 22", func(t *testing.T) {
		assert.Equal(t, at(1, 0), services.DueInstant(early, at(22, 59), services.CardRollover))
		assert.Equal(t, at(1, 0).AddDate(0, 0, 1), services.DueInstant(early, at(23, 0), services.CardRollover))
		assert.Equal(t, at(4, 0), services.DueInstant(late, at(23, 0), services.CardRollover))
	})

	t.Run("sort rollover starts after 20 and covers until 5", func(t *testing.T) {
		assert.Equal(t, at(1, 0), services.DueInstant(early, at(20, 30), services.SortRollover))
		assert.Equal(t, at(4, 0).AddDate(0, 0, 1), services.DueInstant(late, at(21, 0), services.SortRollover))
	})
}

func TestMinutesUntil(t *testing.T) {
	assert.Equal(t, 10, services.MinutesUntil(at(14, 10), at(14, 0)))
	assert.Equal(t, -30, services.MinutesUntil(at(13, 30), at(14, 0)))
	assert.Equal(t, 1, services.MinutesUntil(at(14, 0).Add(10*time.Second), at(14, 0)))
	assert.Equal(t, 0, services.MinutesUntil(at(14, 0).Add(-10*time.Second), at(14, 0)))
}

func TestUrgencyLevel_String(t *testing.T) {
	assert.Equal(t, "urgent", services.Urgent.String())
	assert.Equal(t, "warning", services.Warning.String())
	assert.Equal(t, "normal", services.Normal.String())
	assert.Equal(t, "none", services.UrgencyLevel(0).String())
}
