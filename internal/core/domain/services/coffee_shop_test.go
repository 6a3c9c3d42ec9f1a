package services_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoffeeShop_IsOpen(t *testing.T) {
	t.Run("should always be open", func(t *testing.T) {
		shop := services.NewCoffeeShop()

		assert.True(t, shop.IsOpen())
	})
}

func TestCoffeeShop_Brew(t *testing.T) {
	shop := services.NewCoffeeShop()

	t.Run("should describe brewing the drink", func(t *testing.T) {
		assert.Equal(t, "Brewing Cappuccino...", shop.Brew("Cappuccino"))
	})

	t.Run("should format any drink label", func(t *testing.T) {
		testCases := []struct {
			drink    string
			expected string
		}{
			{"Latte", "Brewing Latte..."},
			{"Flat White", "Brewing Flat White..."},
			{"", "Brewing ..."},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, shop.Brew(tc.drink))
		}
	})
}

func TestCoffeeShop_Serve(t *testing.T) {
	shop := services.NewCoffeeShop()

	t.Run("should describe serving the order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Latte", "medium")
		require.NoError(t, err)

		assert.Equal(t, "Serving Latte (medium)", shop.Serve(o))
	})

	t.Run("should not change the order status", func(t *testing.T) {
		// Rendering a serving description is decoupled from the lifecycle:
		// the order stays in Ordered status until the caller serves it.
		o, err := order.NewOrder(kernel.NewUUID(), "Latte", "medium")
		require.NoError(t, err)

		_ = shop.Serve(o)

		assert.Equal(t, order.Ordered, o.Status())
		assert.False(t, o.Served())
	})

	t.Run("should describe a prepared order the same way", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Espresso", "small")
		require.NoError(t, err)
		o.Prepare()

		assert.Equal(t, "Serving Espresso (small)", shop.Serve(o))
		assert.Equal(t, order.Prepared, o.Status())
	})
}
