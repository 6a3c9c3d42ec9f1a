package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewPlaceOrderCommand(id, "Latte", "medium")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "Latte", cmd.Drink())
		assert.Equal(t, "medium", cmd.Size())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewPlaceOrderCommand(invalidID, "Latte", "medium")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should accept empty drink and size", func(t *testing.T) {
		// Labels are free-form: the command does not validate them.
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Drink())
		assert.Empty(t, cmd.Size())
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}
