package kernel_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("12.5"))
		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())

		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should parse strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("7.90")
		require.NoError(t, err)
		assert.InDelta(t, 7.9, m.Float64(), 0.0001)

		_, err = kernel.MoneyFromString("seven")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	pizza, _ := kernel.MoneyFromString("8.50")
	drink, _ := kernel.MoneyFromFloat(2.2)

	total := pizza.Mul(3).Add(drink.Mul(2))

	assert.Equal(t, "29.90", total.String())
	assert.True(t, total.IsEqual(kernel.ZeroMoney().Add(total)))
}
