package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrPrepareOrderCommandIsNotConstructed = errors.New(
		"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
	)
)

// PrepareOrderCommand represents a request to mark a specific order as prepared.
// The underlying transition is unguarded: preparing an order succeeds from any
// lifecycle state.
type PrepareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrepareOrderCommand creates a command to prepare the order with the given ID.
func NewPrepareOrderCommand(orderID kernel.UUID) (PrepareOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PrepareOrderCommand{}, err
	}

	return PrepareOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPrepareOrderCommandIsNotConstructed if validation fails.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to prepare.
func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
