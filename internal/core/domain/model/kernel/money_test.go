package kernel_test

import (
	"testing"

	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates_valid_money", func(t *testing.T) {
		money, err := kernel.NewMoney(1250.50, "eur")

		require.NoError(t, err)
		require.NoError(t, money.Validate())
		assert.InDelta(t, 1250.50, money.Amount(), 0)
		assert.Equal(t, "EUR", money.Currency())
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -0.01} {
			_, err := kernel.NewMoney(amount, "EUR")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects_empty_currency", func(t *testing.T) {
		_, err := kernel.NewMoney(100, "  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var money kernel.Money
		require.Error(t, money.Validate())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	first, err := kernel.NewMoney(10, "USD")
	require.NoError(t, err)
	same, err := kernel.NewMoney(10, "usd")
	require.NoError(t, err)
	other, err := kernel.NewMoney(10, "EUR")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
}

func TestMoney_String(t *testing.T) {
	money, err := kernel.NewMoney(99.9, "UAH")
	require.NoError(t, err)

	assert.Equal(t, "99.9 UAH", money.String())
}
