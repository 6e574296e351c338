package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want order.Platform
	}{
		{"just-eat", order.JustEat},
		{"JUST_EAT", order.JustEat},
		{"glovo", order.Glovo},
		{"Deliveroo", order.Deliveroo},
		{"uber-eats", order.UberEats},
		{"phone", order.Phone},
		{" takeaway ", order.Takeaway},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := order.ParsePlatform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject unknown platform", func(t *testing.T) {
		_, err := order.ParsePlatform("dine-in")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPlatform_FulfillmentKind(t *testing.T) {
	for _, p := range order.Platforms() {
		t.Run(p.Key(), func(t *testing.T) {
			want := order.Delivery
			if p == order.Takeaway || p == order.Phone {
				want = order.Pickup
			}
			assert.Equal(t, want, p.FulfillmentKind())
		})
	}

	assert.Equal(t, "DEL", order.Delivery.Prefix())
	assert.Equal(t, "ASP", order.Pickup.Prefix())
}

func TestPlatform_Presentation(t *testing.T) {
	assert.Equal(t, "UBER_EATS", order.UberEats.Token())
	assert.Equal(t, "Uber Eats", order.UberEats.Label())
	assert.NotEmpty(t, order.UberEats.Color())
	assert.Equal(t, "Unknown", order.UnknownPlatform.Label())
	assert.Equal(t, "unknown", order.UnknownPlatform.String())
	require.Error(t, order.UnknownPlatform.Validate())
	assert.Len(t, order.Platforms(), 6)
}
